package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should be empty")
	}
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelSchema, Message: "bad bounds"})
	if r.Valid {
		t.Error("report with errors should be invalid")
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should set severity")
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %q", r.Summary)
	}
}

func TestWarningsKeepReportValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelExtraction, Message: "no usable areas"})
	r.AddInfo(Result{Level: LevelPlacement, Message: "placed 0 blocks"})
	if !r.Valid {
		t.Error("warnings and info should not invalidate the report")
	}
}

func TestMergePropagatesInvalid(t *testing.T) {
	a := NewReport()
	b := NewReport()
	b.AddError(Result{Level: LevelPathway, Message: "broken"})
	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report should invalidate")
	}
	if len(a.Errors) != 1 {
		t.Errorf("expected 1 merged error, got %d", len(a.Errors))
	}
}
