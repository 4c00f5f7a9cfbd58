package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// InputSuffix marks the image to inpaint.
	InputSuffix = "_in.png"
	// MaskSuffix marks the mask that goes with an input.
	MaskSuffix = "_mask.png"
	// OutputSuffix marks the inpainted result.
	OutputSuffix = "_out.png"
	// ReferenceSuffix marks the OpenCV result.
	ReferenceSuffix = "_opencv.png"
	// SheetSuffix marks the side-by-side comparison.
	SheetSuffix = "_sheet.png"
)

// Sample is an input image and its mask found in a sample directory.
type Sample struct {
	// Name is the file name without the suffix, e.g. "bird" for bird_in.png.
	Name string
	// InputPath is the path to the image to inpaint.
	InputPath string
	// MaskPath is the path to the mask.
	MaskPath string
}

// OutputPath returns the path the inpainted result is written to.
func (s Sample) OutputPath() string {
	return s.sibling(OutputSuffix)
}

// ReferencePath returns the path the OpenCV result is written to.
func (s Sample) ReferencePath() string {
	return s.sibling(ReferenceSuffix)
}

// SheetPath returns the path the comparison sheet is written to.
func (s Sample) SheetPath() string {
	return s.sibling(SheetSuffix)
}

func (s Sample) sibling(suffix string) string {
	return filepath.Join(filepath.Dir(s.InputPath), s.Name+suffix)
}

// LoadSamplePairs scans dir for <name>_in.png files that have a matching
// <name>_mask.png.
//
// Arguments:
// - dir: Directory path containing the samples.
//
// Returns:
// - []Sample: The samples sorted by name.
// - error: Error if the directory cannot be read or an input has no mask.
func LoadSamplePairs(dir string) ([]Sample, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read sample directory %s", dir)
	}

	var samples []Sample
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), InputSuffix) {
			continue
		}

		name := strings.TrimSuffix(file.Name(), InputSuffix)
		maskPath := filepath.Join(dir, name+MaskSuffix)
		if _, statErr := os.Stat(maskPath); statErr != nil {
			return nil, errors.Wrapf(statErr, "mask for sample %q", name)
		}
		samples = append(samples, Sample{
			Name:      name,
			InputPath: filepath.Join(dir, file.Name()),
			MaskPath:  maskPath,
		})
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})

	return samples, nil
}
