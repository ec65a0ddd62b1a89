package verification

// Report tracks the work done while verifying a structure. It is also
// returned, partially filled, alongside an error: directories created before a
// failure remain on disk and are listed.
type Report struct {
	DirsCreated  []string
	DirsChecked  int
	FilesChecked int
}

// Created reports whether any directory was created.
func (r *Report) Created() bool {
	return r != nil && len(r.DirsCreated) > 0
}

// mergeReports merges a source [Report] into a target [Report].
func mergeReports(target, source *Report) {
	if target == nil || source == nil {
		return
	}

	target.DirsCreated = append(target.DirsCreated, source.DirsCreated...)
	target.DirsChecked += source.DirsChecked
	target.FilesChecked += source.FilesChecked
}
