package docgen

import (
	"path"
	"regexp"
	"strings"
)

// Buckets this pipeline touches. Identity and signature buckets are
// read-only; generated documents go to the contracts bucket.
const (
	BucketContracts    = "contracts"
	BucketIdentityDocs = "identity-documents"
	BucketSignatures   = "signatures"
)

// RefKind classifies a document reference string.
type RefKind int

const (
	RefUnresolvable RefKind = iota
	RefKnown                // bucket + object path
	RefExternal             // arbitrary URL, fetched over HTTP
)

// StorageRef is the parsed form of a document reference. Kind decides
// which fields are populated: Bucket/Path for RefKnown, URL for
// RefExternal.
type StorageRef struct {
	Kind   RefKind
	Bucket string
	Path   string
	URL    string
}

// Matches the object segment of a full storage URL, e.g.
// https://host/storage/v1/object/public/signatures/sig_abc.png
var storageObjectRe = regexp.MustCompile(`/storage/v1/object/(?:public/|sign/|authenticated/)?([^/?]+)/([^?]+)`)

// ParseStorageRef classifies a raw reference without any network I/O.
// Resolution order: known bucket prefix, full storage URL, external URL,
// bare path with a filename hint.
func ParseStorageRef(raw string) StorageRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StorageRef{Kind: RefUnresolvable}
	}

	for _, bucket := range []string{BucketIdentityDocs, BucketSignatures} {
		if strings.HasPrefix(raw, bucket+"/") {
			return StorageRef{Kind: RefKnown, Bucket: bucket, Path: strings.TrimPrefix(raw, bucket+"/")}
		}
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		if m := storageObjectRe.FindStringSubmatch(raw); m != nil {
			return StorageRef{Kind: RefKnown, Bucket: m[1], Path: m[2]}
		}
		return StorageRef{Kind: RefExternal, URL: raw}
	}

	// Bare path: guess the bucket from the filename. Signature uploads
	// carry a "sig" marker in their generated names.
	if strings.Contains(strings.ToLower(path.Base(raw)), "sig") {
		return StorageRef{Kind: RefKnown, Bucket: BucketSignatures, Path: raw}
	}
	return StorageRef{Kind: RefKnown, Bucket: BucketIdentityDocs, Path: raw}
}
