package flow

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/robert-malhotra/go-bloodflow/internal/record"
)

// Entry describes one file a dataset directory may contain.
type Entry struct {
	// Name is the file name. For pattern entries it is a case-insensitive
	// substring matched against regular file names instead.
	Name    string
	Pattern bool

	// Label names the content in report lines, e.g. "reading mesh".
	Label string

	// Kind is the binary grammar of the file, or record.KindInvalid for text files.
	Kind record.Kind

	missing string
	text    textFunc
}

// Text reports whether the entry is a plain-text file.
func (e Entry) Text() bool {
	return e.text != nil
}

func (e Entry) missingLabel() string {
	if e.missing != "" {
		return e.missing
	}
	return "no " + e.Label
}

// Group labels for pattern entries.
const (
	group2DTFlow    = "2D+T flow images"
	group3DAnatomy  = "3D anatomical images"
	group3DTAnatomy = "3D+T anatomical images"
)

// DatasetEntries lists the dataset-level files in report order.
func DatasetEntries() []Entry {
	return []Entry{
		{Name: "dataset_tags.txt", Label: "filter tags", text: readFilterTags},
		{Name: "dicom_tags_3dt_flow", Label: "dicom tags", Kind: record.KindDicomTags},
		{Name: "venc", Label: "venc", Kind: record.KindVenc},
		{Name: "cardiac_cycle", Label: "cardiac cycle definition", Kind: record.KindCardiacCycle},
		{Name: "static_tissue_mask_in_flowfield_size", Label: "static tissue mask", Kind: record.KindSparseField},
		{Name: "static_tissue_ivsd_thresholds", Label: "static tissue ivsd thresholds", Kind: record.KindIVSDThresholds},
		{Name: "phase_wraps_3dt", Label: "phase wraps", Kind: record.KindPhaseWraps},
		{Name: "flowfield", Label: "flow field", Kind: record.KindFlowField},
		{Name: "velocity_offset_correction_3dt.voc", Label: "flow images' velocity offset correction", Kind: record.KindVelocityOffset,
			missing: "no 3D+T flow images' velocity offset correction"},
		{Name: "flowfield_2dt", Pattern: true, Label: group2DTFlow, Kind: record.KindFlowImage2DT},
		{Name: "magnitude3dt_tmip", Label: "mag tmip", Kind: record.KindSparseField},
		{Name: "3d_anatomical_image", Pattern: true, Label: group3DAnatomy, Kind: record.KindSparseField},
		{Name: "3dt_anatomical_image", Pattern: true, Label: group3DTAnatomy, Kind: record.KindSparseField},
		{Name: "pressuremap", Label: "pressure map", Kind: record.KindSparseField},
		{Name: "rotationdirection", Label: "rotation direction map", Kind: record.KindSparseField},
		{Name: "axialvelocity", Label: "axial velocity map", Kind: record.KindSparseField},
		{Name: "cosangletocenterline", Label: "cos(angle) to centerline", Kind: record.KindSparseField},
		{Name: "tke", Label: "turbulent kinetic energy map", Kind: record.KindSparseField},
		{Name: "ivsd", Label: "ivsd", Kind: record.KindSparseField},
		{Name: "flow_stats", Label: "flow statistics", Kind: record.KindFlowStats},
	}
}

// VesselEntries lists the files of one vessel subdirectory in report order.
func VesselEntries() []Entry {
	return []Entry{
		{Name: "mesh", Label: "mesh", Kind: record.KindMesh, missing: "vessel has no mesh"},
		{Name: "centerline_seed_target_ids_on_mesh", Label: "centerline start/end ids", Kind: record.KindSeedTargetIDs},
		{Name: "centerlines", Label: "centerlines", Kind: record.KindCenterlines, missing: "vessel has no centerlines"},
		{Name: "flowjets", Label: "flow jet", Kind: record.KindFlowJets},
		{Name: "pathlines", Label: "pathlines", Kind: record.KindPathlines, missing: "vessel has no pathlines"},
		{Name: "measuring_planes", Label: "land marks of measuring planes", Kind: record.KindMeasuringPlanes,
			missing: "vessel has no land marks of measuring planes"},
		{Name: "segmentation", Label: "segmentation", Kind: record.KindSparseField},
		{Name: "segmentation_info.txt", Label: "segmentation info", text: readSegmentationInfo},
		{Name: "graphcut_segmentation_inside_outside_ids", Label: "segmentation graph cut inside/outside ids", Kind: record.KindGraphcutIDs},
		{Name: "segmentation_in_flowfield_size", Label: "segmentation in flow field size", Kind: record.KindSparseField},
		{Name: "vessel_section_segmentation_in_flowfield_size", Label: "vessel section segmentation in flow field size",
			Kind: record.KindSectionSegmentation},
		{Name: "vessel_section_info.txt", Label: "vessel section segmentation semantics", text: readSectionSemantics},
	}
}

// normalizeDir converts backslashes to slashes and drops a trailing slash.
func normalizeDir(dir string) string {
	dir = strings.ReplaceAll(dir, `\`, "/")
	if len(dir) > 1 {
		dir = strings.TrimSuffix(dir, "/")
	}
	return dir
}

// listVessels returns the sorted names of dir's subdirectories.
func listVessels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// matchFiles returns the sorted names of regular files in dir whose name
// contains pattern, ignoring case.
func matchFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	pattern = strings.ToLower(pattern)
	var names []string
	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Name()), pattern) {
			continue
		}
		// Stat follows symlinks; dangling links are skipped.
		fi, err := os.Stat(join(dir, e.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func join(dir, name string) string {
	return path.Join(dir, name)
}
