package ai

import (
	"testing"
)

type parsedNote struct {
	Object  string `json:"object"`
	Process string `json:"process"`
}

func TestUnmarshalFlexible(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    parsedNote
		wantErr bool
	}{
		{
			name:  "StandardJSON",
			input: `{"object": "W-204H", "process": "Release"}`,
			want:  parsedNote{Object: "W-204H", Process: "Release"},
		},
		{
			name:  "DoubleEncoded",
			input: `"{\"object\": \"W-204H\", \"process\": \"Release\"}"`,
			want:  parsedNote{Object: "W-204H", Process: "Release"},
		},
		{
			name:  "MalformedRepaired",
			input: `{object: "W-204H", process: "Release"}`,
			want:  parsedNote{Object: "W-204H", Process: "Release"},
		},
		{
			name:  "DuplicateLeadingBrace",
			input: `{ {"object": "W-204H", "process": "Release"}`,
			want:  parsedNote{Object: "W-204H", Process: "Release"},
		},
		{
			name:  "SurroundingWhitespace",
			input: "\n  {\"object\": \"W-204H\", \"process\": \"Release\"}  \n",
			want:  parsedNote{Object: "W-204H", Process: "Release"},
		},
		{
			name:    "NotJSONAtAll",
			input:   `the model refused to answer`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got parsedNote
			err := UnmarshalFlexible(tc.input, &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalFlexible: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGenerateSchemaClosedObject(t *testing.T) {
	schema := GenerateSchema(&parsedNote{})
	if schema == nil {
		t.Fatal("GenerateSchema returned nil")
	}
}
