// Package record decodes the binary result files of the flow pipeline into
// in-memory records and describes them as bounded report text.
//
// The files carry no header, tag or checksum. Each grammar is a fixed linear
// sequence of typed reads in which every array length comes from a count read
// earlier in the same file. Decoders record those counts in a
// [shape.Context] and size every array from it, so an array can never be read
// before the dimension it depends on.
//
// # Grammars
//
// Every grammar is identified by a [Kind]:
//
//   - KindSparseField: N-dimensional sparse scalar field. Reused by pressure,
//     rotation direction, axial velocity, cos angle, TKE, IVSD, magnitude
//     TMIP, anatomical images, static tissue mask and every segmentation.
//     See [SparseField].
//   - KindSectionSegmentation: a count followed by that many sparse fields.
//   - KindMesh: vessel surface with wall shear stress and OSI. See [Mesh].
//   - KindCenterlines, KindSeedTargetIDs: vessel centerlines and their seed
//     and target ids on the mesh.
//   - KindPathlines: particle traces with per-point attributes.
//   - KindFlowField, KindFlowImage2DT: dense 3D+T and 2D+T velocity images.
//   - KindMeasuringPlanes: plain and landmark measuring planes sharing one
//     plane grammar. See [MeasuringPlane] and [Landmark].
//   - KindFlowJets: tracked flow jets per cross-section and time.
//   - KindGraphcutIDs: inside/outside seed voxels of the segmentation.
//   - KindDicomTags, KindVenc, KindCardiacCycle, KindPhaseWraps,
//     KindVelocityOffset, KindIVSDThresholds: dataset-level acquisition data.
//   - KindFlowStats: named scalar and per-time flow statistics.
//
// # Decoding
//
// Use [Decode] to read one record of a known kind from a cursor:
//
//	rec, err := record.Decode(record.KindMesh, cursor)
//	if err != nil {
//	    return err
//	}
//	b := report.New(3)
//	rec.Describe(b)
//
// A short read fails the whole record with an error wrapping
// binary.ErrTruncated; no partially decoded record is returned. Records are
// plain values and Describe never modifies them.
package record
