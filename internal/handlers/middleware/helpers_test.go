package middleware

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) CaptureError(err error, _ map[string]string) {
	r.errs = append(r.errs, err)
}
