package ignorance

import (
	"bytes"
	"testing"
)

func TestReporter_PlainOnBuffers(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newReporter(&out, &errOut)

	for i := 0; i < 2; i++ {
		r.warn(token, ".gitignore", "/repo/.gitignore")
		r.confirm(token, ".gitignore")
	}

	wantErr := warningMessage(token, ".gitignore", "/repo/.gitignore") + "\n"
	if got := errOut.String(); got != wantErr+wantErr {
		t.Errorf("stderr = %q, want %q twice", got, wantErr)
	}
	wantOut := addedMessage(token, ".gitignore") + "\n"
	if got := out.String(); got != wantOut+wantOut {
		t.Errorf("stdout = %q, want %q twice", got, wantOut)
	}
}

func TestNew_BindsReporterToStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	ig := New(Options{Out: &out, Err: &errOut})

	if ig.report.out != &out || ig.report.err != &errOut {
		t.Error("reporter is not bound to Options.Out and Options.Err")
	}
}
