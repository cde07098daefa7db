package constants

// Disposition is a reviewer's verdict on a sentence. A NULL disposition
// in the DB means the sentence is still pending review.
type Disposition string

const (
	DispositionAccept Disposition = "accept"
	DispositionReject Disposition = "reject"
)

// Dispositions holds the allowed non-null values for the disposition field.
var Dispositions = []string{
	string(DispositionAccept),
	string(DispositionReject),
}

// ObjectKind discriminates taxonomy entries.
type ObjectKind string

const (
	KindTechnique ObjectKind = "technique"
	KindGroup     ObjectKind = "group"
)

// ObjectKinds holds the allowed values for the kind field in AttackObject.
var ObjectKinds = []string{
	string(KindTechnique),
	string(KindGroup),
}
