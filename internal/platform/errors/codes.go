// Package errors provides structured error handling for gameforge domains.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Specification errors
	CodeSpecEmptyDescription    Code = "SPEC_EMPTY_DESCRIPTION"
	CodeSpecInvalidDimension    Code = "SPEC_INVALID_DIMENSION"
	CodeSpecInvalidComplexity   Code = "SPEC_INVALID_COMPLEXITY"
	CodeSpecInvalidOptimization Code = "SPEC_INVALID_OPTIMIZATION"
	CodeSpecUnknownFeature      Code = "SPEC_UNKNOWN_FEATURE"
	CodeSpecInvalidName         Code = "SPEC_INVALID_NAME"

	// Blueprint errors
	CodeBlueprintInvalidIdentifier Code = "BLUEPRINT_INVALID_IDENTIFIER"
	CodeBlueprintDuplicateField    Code = "BLUEPRINT_DUPLICATE_FIELD"
	CodeBlueprintMissingComponent  Code = "BLUEPRINT_MISSING_COMPONENT"

	// Encoding errors
	CodeEncodingInvalidJSON Code = "ENCODING_INVALID_JSON"
	CodeEncodingWriteFailed Code = "ENCODING_WRITE_FAILED"

	// Upstream errors
	CodeUpstreamUnavailable   Code = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamBadResponse   Code = "UPSTREAM_BAD_RESPONSE"
	CodeUpstreamNotConfigured Code = "UPSTREAM_NOT_CONFIGURED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Kind groups codes into the coarse failure taxonomy callers branch on.
type Kind int

const (
	// KindUnknown is any error outside the domain taxonomy.
	KindUnknown Kind = iota
	// KindMalformedSpecification covers structurally invalid input.
	KindMalformedSpecification
	// KindSerialization covers encode/decode failures at the boundary.
	KindSerialization
	// KindUpstream covers external dependency failures, propagated unchanged.
	KindUpstream
	// KindNotFound covers missing storage records.
	KindNotFound
)

// ErrorKind maps a domain code to its taxonomy kind.
func (c Code) ErrorKind() Kind {
	switch c {
	case CodeSpecEmptyDescription, CodeSpecInvalidDimension, CodeSpecInvalidComplexity,
		CodeSpecInvalidOptimization, CodeSpecUnknownFeature, CodeSpecInvalidName,
		CodeBlueprintInvalidIdentifier, CodeBlueprintDuplicateField, CodeBlueprintMissingComponent:
		return KindMalformedSpecification
	case CodeEncodingInvalidJSON, CodeEncodingWriteFailed:
		return KindSerialization
	case CodeUpstreamUnavailable, CodeUpstreamBadResponse, CodeUpstreamNotConfigured:
		return KindUpstream
	case CodeNotFound:
		return KindNotFound
	default:
		return KindUnknown
	}
}
