// Package bezier deals with single cubic Bézier segments: evaluation,
// derivatives and curvature.
/*

A cubic segment is given by four control points p0, p1, p2 and p3. The curve
starts at p0 in direction of p1 and ends at p3, arriving from the direction
of p2. Points on the curve are evaluated with the Bernstein basis

	B(t) = (1−t)³·p0 + 3(1−t)²t·p1 + 3(1−t)t²·p2 + t³·p3,    t ∈ [0,1]

Curvature is computed analytically from the first and second derivative

	κ(t) = |x′y″ − y′x″| / (x′² + y′²)^1.5

and is defined to be 0 where the curve has zero velocity (x′ = y′ = 0).

Segments print in a notation close to MetaPost's:

	(0,0) .. controls (0.0000,50.0000) and (50.0000,50.0000) .. (50,0)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier
