package config

// Field length limits enforced by the project form.
const (
	// ProjectNameMaxLength is the maximum length of a project name.
	ProjectNameMaxLength = 32

	// ProjectTagMaxLength is the maximum length of a single project tag.
	ProjectTagMaxLength = 16

	// ProjectTagMaxCount is the maximum number of tags per project.
	ProjectTagMaxCount = 10

	// ProjectDescriptionMaxLength is the maximum length of a project description.
	ProjectDescriptionMaxLength = 1024

	// ContentItemMaxLength is the maximum length of a single distribution
	// content item. Longer items are truncated during import, not rejected.
	ContentItemMaxLength = 1024
)

// Default numeric values for a freshly opened project form.
const (
	// DefaultDistributionMode is the preselected distribution mode (one code per use).
	DefaultDistributionMode = 0

	// DefaultMinTrustLevel is the preselected minimum trust level required to claim.
	DefaultMinTrustLevel = 0

	// DefaultRiskThreshold is the preselected risk score ceiling for claimers.
	DefaultRiskThreshold = 100
)
