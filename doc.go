// Package fillborders synthesizes the outer margins of video frames.
//
// # Overview
//
// A frame often carries a few columns or rows at its edges that hold no
// picture: black bars left by a crop, ringing from a resize, garbage from a
// capture device. fillborders treats everything inside the margins as
// known and rewrites the margins from it using one of seven modes:
//
//   - ModeMargins: edge replication sideways, 3-2-3 averaged rows
//   - ModeRepeat: nearest interior sample or row
//   - ModeMirror: reflection excluding the boundary sample
//   - ModeReflect: reflection about the boundary sample
//   - ModeWrap: the opposite side of the interior, with optional seam
//     smoothing (WithTransient)
//   - ModeFade: a linear fade toward a constant or the opposite edge
//   - ModeFixBorders: a directional three-tap blend of the adjacent lines
//
// Samples may be 8-bit, 9 to 16-bit or 32-bit float; the Filter type is
// generic over the storage type.
//
// # Quick Start
//
//	format := plane.YUV(plane.SampleUint8, 8, 1, 1, false, 1920, 1080)
//	f, err := fillborders.New[uint8](format,
//	    fillborders.WithMode(fillborders.ModeMirror),
//	    fillborders.WithBorders([]int{4}, []int{2}, []int{4}, []int{2}),
//	)
//	if err != nil {
//	    return err
//	}
//	err = f.Process(src, dst)
//
// # Border values
//
// Each side takes zero to four values. One value applies to every plane,
// halved (shifted) on subsampled chroma planes. Two values are luma and
// chroma. Three values are per Y/U/V plane. Four values add alpha, which
// otherwise takes the luma value.
//
// # Concurrency
//
// A Filter is immutable after New. Process may be called concurrently for
// distinct destination frames; ProcessAll fans a batch out to a worker pool.
// A Processor serves frames of varying formats, keeping one Filter per
// format.
package fillborders
