package sdl

// Point mirrors SDL_Point.
type Point struct {
	X int32
	Y int32
}

// FPoint mirrors SDL_FPoint.
type FPoint struct {
	X float32
	Y float32
}

// Rect mirrors SDL_Rect.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// FRect mirrors SDL_FRect.
type FRect struct {
	X float32
	Y float32
	W float32
	H float32
}

var (
	fnHasRectIntersection        func(a, b *Rect) Bool
	fnGetRectIntersection        func(a, b, result *Rect) Bool
	fnGetRectUnion               func(a, b, result *Rect) int32
	fnGetRectEnclosingPoints     func(points *Point, count int32, clip, result *Rect) Bool
	fnGetRectAndLineIntersection func(rect *Rect, x1, y1, x2, y2 *int32) Bool

	fnHasRectIntersectionFloat        func(a, b *FRect) Bool
	fnGetRectIntersectionFloat        func(a, b, result *FRect) Bool
	fnGetRectUnionFloat               func(a, b, result *FRect) int32
	fnGetRectEnclosingPointsFloat     func(points *FPoint, count int32, clip, result *FRect) Bool
	fnGetRectAndLineIntersectionFloat func(rect *FRect, x1, y1, x2, y2 *float32) Bool
)

func registerRectFuncs() {
	register(&fnHasRectIntersection, "SDL_HasRectIntersection")
	register(&fnGetRectIntersection, "SDL_GetRectIntersection")
	register(&fnGetRectUnion, "SDL_GetRectUnion")
	register(&fnGetRectEnclosingPoints, "SDL_GetRectEnclosingPoints")
	register(&fnGetRectAndLineIntersection, "SDL_GetRectAndLineIntersection")
	register(&fnHasRectIntersectionFloat, "SDL_HasRectIntersectionFloat")
	register(&fnGetRectIntersectionFloat, "SDL_GetRectIntersectionFloat")
	register(&fnGetRectUnionFloat, "SDL_GetRectUnionFloat")
	register(&fnGetRectEnclosingPointsFloat, "SDL_GetRectEnclosingPointsFloat")
	register(&fnGetRectAndLineIntersectionFloat, "SDL_GetRectAndLineIntersectionFloat")
}

// Empty reports whether the rectangle has no area. Mirrors the SDL_RectEmpty
// header inline, which is not an exported symbol.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r. Mirrors the SDL_PointInRect
// header inline.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HasIntersection reports whether r and other overlap.
func (r *Rect) HasIntersection(other *Rect) bool {
	return fnHasRectIntersection(r, other).Bool()
}

// Intersection computes the overlap of r and other. ok is false when the
// rectangles do not intersect.
func (r *Rect) Intersection(other *Rect) (result Rect, ok bool) {
	ok = fnGetRectIntersection(r, other, &result).Bool()
	return result, ok
}

// Union computes the smallest rectangle containing both r and other.
func (r *Rect) Union(other *Rect) (Rect, error) {
	var result Rect
	if err := errorFromCode(fnGetRectUnion(r, other, &result)); err != nil {
		return Rect{}, err
	}
	return result, nil
}

// EnclosePoints computes the minimal rectangle enclosing the given points,
// optionally clipped. ok is false when no point is inside the clip rectangle.
func EnclosePoints(points []Point, clip *Rect) (result Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	ok = fnGetRectEnclosingPoints(&points[0], int32(len(points)), clip, &result).Bool()
	return result, ok
}

// IntersectLine clips the line segment (x1,y1)-(x2,y2) against r, updating the
// endpoints in place. ok is false when the segment misses the rectangle.
func (r *Rect) IntersectLine(x1, y1, x2, y2 *int32) bool {
	return fnGetRectAndLineIntersection(r, x1, y1, x2, y2).Bool()
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r.
func (r FRect) Contains(p FPoint) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// HasIntersection reports whether r and other overlap.
func (r *FRect) HasIntersection(other *FRect) bool {
	return fnHasRectIntersectionFloat(r, other).Bool()
}

// Intersection computes the overlap of r and other.
func (r *FRect) Intersection(other *FRect) (result FRect, ok bool) {
	ok = fnGetRectIntersectionFloat(r, other, &result).Bool()
	return result, ok
}

// Union computes the smallest rectangle containing both r and other.
func (r *FRect) Union(other *FRect) (FRect, error) {
	var result FRect
	if err := errorFromCode(fnGetRectUnionFloat(r, other, &result)); err != nil {
		return FRect{}, err
	}
	return result, nil
}

// EncloseFPoints computes the minimal rectangle enclosing the given points,
// optionally clipped.
func EncloseFPoints(points []FPoint, clip *FRect) (result FRect, ok bool) {
	if len(points) == 0 {
		return FRect{}, false
	}
	ok = fnGetRectEnclosingPointsFloat(&points[0], int32(len(points)), clip, &result).Bool()
	return result, ok
}

// IntersectLine clips the line segment (x1,y1)-(x2,y2) against r in place.
func (r *FRect) IntersectLine(x1, y1, x2, y2 *float32) bool {
	return fnGetRectAndLineIntersectionFloat(r, x1, y1, x2, y2).Bool()
}
