// Package ctrlpath holds the control-point model of a composite cubic Bézier
// path, as edited interactively on top of a map.
/*

Users place a minimal set of points. The first four points make up the first
segment verbatim: anchor, two handles, anchor. Every following segment needs
only two more points: the handle arriving at its end anchor, and the anchor
itself. The handle leaving the previous anchor is never stored; it is derived
by mirroring the stored arriving handle through the shared anchor. This
guarantees tangent continuity at every interior anchor.

	index:  0    1    2    3    4    5    6    7
	role:   A    H    H    A    H    A    H    A

A path may be closed into a loop. The closing segment runs from the last
anchor back to the first one, leaving the last anchor mirrored to its
arriving handle, and arriving at the first anchor mirrored to the first
segment's leaving handle.

Every entry carries its role (Anchor or Handle) explicitly. Roles are
assigned on insertion and never change, since entries can only be appended
or removed at the end.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ctrlpath
