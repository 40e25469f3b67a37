package sampler

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Point is an exported sample in world coordinates.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Curvature float64 `json:"curvature"`
}

// ToJSON returns the world samples in their exported form.
func (sp *SampledPath) ToJSON() []Point {
	pts := make([]Point, len(sp.World))
	for i, s := range sp.World {
		pts[i] = Point{X: s.Pos.X(), Y: s.Pos.Y(), Curvature: s.Curvature}
	}
	return pts
}

// WriteJSON writes the exported world samples as a JSON array.
func (sp *SampledPath) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sp.ToJSON()); err != nil {
		return fmt.Errorf("exporting sampled path: %w", err)
	}
	return nil
}

// === ROS messages ==========================================================

// The following types mirror the JSON form of the ROS messages
// nav_msgs/Path and its parts, as published via rosbridge.

// Header is a std_msgs/Header.
type Header struct {
	Seq     uint32 `json:"seq"`
	Stamp   Time   `json:"stamp"`
	FrameID string `json:"frame_id"`
}

// Time is a ROS time stamp.
type Time struct {
	Secs  int64 `json:"secs"`
	Nsecs int64 `json:"nsecs"`
}

// Position is a geometry_msgs/Point, in meters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is a geometry_msgs/Quaternion.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Pose is a geometry_msgs/Pose.
type Pose struct {
	Position    Position   `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// PoseStamped is a geometry_msgs/PoseStamped.
type PoseStamped struct {
	Header Header `json:"header"`
	Pose   Pose   `json:"pose"`
}

// NavPath is a nav_msgs/Path, one pose per world sample.
type NavPath struct {
	Header Header        `json:"header"`
	Poses  []PoseStamped `json:"poses"`
}

// YawQuaternion returns the rotation around the z-axis by yaw radians.
func YawQuaternion(yaw float64) Quaternion {
	return Quaternion{Z: math.Sin(yaw / 2), W: math.Cos(yaw / 2)}
}

// NavPath converts the world samples into a nav_msgs/Path message in
// frame frameID. Poses are oriented along the direction of travel.
func (sp *SampledPath) NavPath(frameID string) NavPath {
	msg := NavPath{
		Header: Header{FrameID: frameID},
		Poses:  make([]PoseStamped, len(sp.World)),
	}
	for i, s := range sp.World {
		msg.Poses[i] = PoseStamped{
			Header: Header{Seq: uint32(i), FrameID: frameID},
			Pose: Pose{
				Position:    Position{X: s.Pos.X(), Y: s.Pos.Y()},
				Orientation: YawQuaternion(s.Heading),
			},
		}
	}
	return msg
}
