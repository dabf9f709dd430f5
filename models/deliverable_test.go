package models

import "testing"

func TestValidatePayload(t *testing.T) {
	file := &FilePayload{FileURL: "/static/d/a.pdf", FileName: "a.pdf", FileType: "application/pdf"}
	link := &LinkPayload{URL: "https://example.com/work"}

	cases := []struct {
		name    string
		d       Deliverable
		wantErr bool
	}{
		{"file ok", Deliverable{Type: DeliverableFile, File: file}, false},
		{"link ok", Deliverable{Type: DeliverableLink, Link: link}, false},
		{"file missing payload", Deliverable{Type: DeliverableFile}, true},
		{"link missing payload", Deliverable{Type: DeliverableLink}, true},
		{"file with link payload", Deliverable{Type: DeliverableFile, File: file, Link: link}, true},
		{"link with file payload", Deliverable{Type: DeliverableLink, Link: link, File: file}, true},
		{"file missing name", Deliverable{Type: DeliverableFile, File: &FilePayload{FileURL: "/x"}}, true},
		{"link empty url", Deliverable{Type: DeliverableLink, Link: &LinkPayload{}}, true},
		{"unknown type", Deliverable{Type: "archive", File: file}, true},
	}

	for _, tc := range cases {
		err := tc.d.ValidatePayload()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}
