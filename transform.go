package tether

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform returns [a, b, c, d, tx, ty] for
// Translate(X, Y) * Rotate * Scale.
func computeLocalTransform(o *object) [6]float64 {
	if o.rotation == 0 {
		return [6]float64{o.scaleX, 0, 0, o.scaleY, o.x, o.y}
	}
	sin, cos := math.Sincos(o.rotation)
	return [6]float64{
		cos * o.scaleX, sin * o.scaleX,
		-sin * o.scaleY, cos * o.scaleY,
		o.x, o.y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// decomposeScale extracts the per-axis scale of a matrix. A negative
// determinant is folded into the X axis.
func decomposeScale(m [6]float64) (sx, sy float64) {
	sx = math.Hypot(m[0], m[1])
	sy = math.Hypot(m[2], m[3])
	if m[0]*m[3]-m[2]*m[1] < 0 {
		sx = -sx
	}
	return sx, sy
}

// refresh recomputes world transforms for every dirty subtree. Cheap when
// nothing moved since the last call.
func (r *Registry) refresh() {
	if !r.dirty {
		return
	}
	for id := 1; id < len(r.objects); id++ {
		o := &r.objects[id]
		if o.alive && o.parent == 0 {
			r.updateWorldTransform(ObjectID(id), identityTransform, false)
		}
	}
	r.dirty = false
}

// updateWorldTransform recomputes a subtree. parentRecomputed forces children
// of a recomputed node to follow even when they are not dirty themselves.
func (r *Registry) updateWorldTransform(id ObjectID, parent [6]float64, parentRecomputed bool) {
	o := &r.objects[id]
	recompute := o.transformDirty || parentRecomputed
	if recompute {
		o.world = multiplyAffine(parent, computeLocalTransform(o))
		o.transformDirty = false
	}
	for _, c := range o.children {
		r.updateWorldTransform(c, o.world, recompute)
	}
}

// WorldTransform returns the accumulated affine transform of the object.
func (r *Registry) WorldTransform(id ObjectID) [6]float64 {
	r.mustGet(id)
	r.refresh()
	return r.objects[id].world
}

// ParentWorldTransform returns the parent's world transform, or identity for roots.
func (r *Registry) ParentWorldTransform(id ObjectID) [6]float64 {
	p := r.mustGet(id).parent
	if p == 0 {
		return identityTransform
	}
	return r.WorldTransform(p)
}

// WorldPosition returns the object's world-space translation.
func (r *Registry) WorldPosition(id ObjectID) Vec2 {
	m := r.WorldTransform(id)
	return Vec2{m[4], m[5]}
}

// SetWorldPosition places the object so its world translation is (wx, wy),
// converting through the inverse of its parent's world transform. Depth is
// left untouched.
func (r *Registry) SetWorldPosition(id ObjectID, wx, wy float64) {
	inv := invertAffine(r.ParentWorldTransform(id))
	lx, ly := transformPoint(inv, wx, wy)
	r.SetPosition(id, lx, ly)
}

// WorldToLocal converts a world-space point into the object's local space
// using its translation and scale only. Rotation is not modeled here.
func (r *Registry) WorldToLocal(id ObjectID, wx, wy float64) (lx, ly float64) {
	m := r.WorldTransform(id)
	sx, sy := decomposeScale(m)
	return (wx - m[4]) / sx, (wy - m[5]) / sy
}
