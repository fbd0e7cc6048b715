package docgen

import "testing"

func TestParseStorageRef(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StorageRef
	}{
		{
			name: "identity bucket prefix",
			raw:  "identity-documents/u123/front.jpg",
			want: StorageRef{Kind: RefKnown, Bucket: BucketIdentityDocs, Path: "u123/front.jpg"},
		},
		{
			name: "signatures bucket prefix",
			raw:  "signatures/sig_abc.png",
			want: StorageRef{Kind: RefKnown, Bucket: BucketSignatures, Path: "sig_abc.png"},
		},
		{
			name: "full storage url",
			raw:  "https://proj.example.co/storage/v1/object/public/identity-documents/u123/selfie.jpg",
			want: StorageRef{Kind: RefKnown, Bucket: BucketIdentityDocs, Path: "u123/selfie.jpg"},
		},
		{
			name: "signed storage url drops query",
			raw:  "https://proj.example.co/storage/v1/object/sign/signatures/sig_9.png?token=abc",
			want: StorageRef{Kind: RefKnown, Bucket: BucketSignatures, Path: "sig_9.png"},
		},
		{
			name: "external url",
			raw:  "https://photos.example.com/client/photo.jpg",
			want: StorageRef{Kind: RefExternal, URL: "https://photos.example.com/client/photo.jpg"},
		},
		{
			name: "bare path with signature hint",
			raw:  "uploads/sig_99.png",
			want: StorageRef{Kind: RefKnown, Bucket: BucketSignatures, Path: "uploads/sig_99.png"},
		},
		{
			name: "bare path defaults to documents bucket",
			raw:  "uploads/front_99.jpg",
			want: StorageRef{Kind: RefKnown, Bucket: BucketIdentityDocs, Path: "uploads/front_99.jpg"},
		},
		{
			name: "empty reference",
			raw:  "",
			want: StorageRef{Kind: RefUnresolvable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStorageRef(tt.raw)
			if got != tt.want {
				t.Errorf("ParseStorageRef(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
