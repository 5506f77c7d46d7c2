package bgstrip

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wbrown/bgstrip/imageutil"
)

// DefaultSuffix is appended to the input stem to name the output.
const DefaultSuffix = "-nobg"

// OutputPath returns the PNG path for the result of input: the input
// stem plus suffix, in the same directory.
func OutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+suffix+".png")
}

// WriteCandidate saves c as a PNG at path.
func WriteCandidate(c Candidate, path string) error {
	if !c.Valid() || c.Image == nil {
		return fmt.Errorf("writing %s: %w", path, ErrEmptyCandidate)
	}
	if err := imageutil.SavePNG(c.Image, path); err != nil {
		return fmt.Errorf("writing fuzz %g%% candidate: %w", c.Tolerance, err)
	}
	return nil
}
