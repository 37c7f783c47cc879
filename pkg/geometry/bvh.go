package geometry

import (
	"time"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"github.com/df07/go-raytracing-kernel/pkg/log"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 4

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // Objects for leaf nodes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy over Hittable objects. It is itself a
// Hittable, so it can be nested or wrapped by decorators.
type BVH struct {
	Root *BVHNode
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	TotalObjects int
}

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Partitioning reorders the slice; never touch the caller's copy
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	start := time.Now()
	bvh := &BVH{Root: buildBVH(objectsCopy)}

	stats := bvh.Stats()
	log.New("bvh").Debugf(
		"BVH build time: %v, objects: %d, nodes: %d, leafs: %d, maxDepth: %d",
		time.Since(start), stats.TotalObjects, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth,
	)

	return bvh
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := core.EmptyAABB
	for _, object := range objects {
		boundingBox = boundingBox.Union(object.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}

	axis := boundingBox.LongestAxis()
	extent := boundingBox.Axis(axis)
	if extent.Size() <= 0 {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}
	splitPos := (extent.Min + extent.Max) * 0.5

	left, right := partitionObjects(objects, axis, splitPos)

	// Every center fell on one side; splitting would recurse forever
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// partitionObjects splits objects by the position of their box center along axis
func partitionObjects(objects []Hittable, axis int, splitPos float64) ([]Hittable, []Hittable) {
	var left, right []Hittable

	for _, object := range objects {
		if object.BoundingBox().Center().Axis(axis) < splitPos {
			left = append(left, object)
		} else {
			right = append(right, object)
		}
	}

	return left, right
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	if bvh.Root == nil {
		return HitRecord{}, false
	}
	return hitNode(bvh.Root, ray, rayT)
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *BVHNode, ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, rayT) {
		return HitRecord{}, false
	}

	if node.Objects != nil {
		return hitClosest(node.Objects, ray, rayT)
	}

	left, hitLeft := hitNode(node.Left, ray, rayT)
	if hitLeft {
		rayT.Max = left.T
	}

	if right, hitRight := hitNode(node.Right, ray, rayT); hitRight {
		return right, true
	}
	return left, hitLeft
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB
	}
	return bvh.Root.BoundingBox
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Objects != nil {
		stats.LeafNodes++
		stats.TotalObjects += len(node.Objects)
		return
	}

	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
