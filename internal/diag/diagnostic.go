package diag

import "fmt"

// Severity classifies whether a Diagnostic is fatal to the export.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Stage identifies which pipeline phase raised the diagnostic.
type Stage string

const (
	StageProject    Stage = "project"
	StageAsset      Stage = "asset"
	StageScheduling Stage = "scheduling"
	StageValidation Stage = "validation"
)

// Category is a coarse classification of an export error's kind:
// malformed input, asset-not-found, out-of-bounds write, slot
// collision, or validation failure.
type Category string

const (
	CategoryMalformedInput    Category = "MalformedInput"
	CategoryAssetNotFound     Category = "AssetNotFound"
	CategoryOutOfBounds       Category = "OutOfBounds"
	CategorySlotCollision     Category = "SlotCollision"
	CategoryValidationFailure Category = "ValidationFailure"
)

// Diagnostic is a fixed-shape report: kind, clip identity if known, and
// a byte/packet offset.
type Diagnostic struct {
	Category Category
	Stage    Stage
	Severity Severity
	Message  string

	ClipTrack int // -1 if not applicable
	ClipStart int // -1 if not applicable
	Offset    int // byte or packet offset, -1 if not applicable
}

func (d Diagnostic) Error() string {
	loc := ""
	if d.ClipTrack >= 0 {
		loc = fmt.Sprintf(" clip(track=%d,start=%d)", d.ClipTrack, d.ClipStart)
	}
	if d.Offset >= 0 {
		loc += fmt.Sprintf(" offset=%d", d.Offset)
	}
	return fmt.Sprintf("%s/%s%s: %s", d.Stage, d.Category, loc, d.Message)
}

// New builds a Diagnostic with unset locators defaulted to -1.
func New(cat Category, stage Stage, sev Severity, msg string) Diagnostic {
	return Diagnostic{
		Category:  cat,
		Stage:     stage,
		Severity:  sev,
		Message:   msg,
		ClipTrack: -1,
		ClipStart: -1,
		Offset:    -1,
	}
}

// WithOffset returns a copy of d with its byte/packet offset set.
func (d Diagnostic) WithOffset(offset int) Diagnostic {
	d.Offset = offset
	return d
}

// WithClip returns a copy of d tagged with a clip's identity.
func (d Diagnostic) WithClip(track, start int) Diagnostic {
	d.ClipTrack = track
	d.ClipStart = start
	return d
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// MultiError bundles diagnostics into an error for fatal returns.
type MultiError struct {
	Diagnostics []Diagnostic
}

func (e *MultiError) Error() string {
	if e == nil || len(e.Diagnostics) == 0 {
		return ""
	}
	return e.Diagnostics[0].Error()
}
