package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pleasurecruise/cdk/internal/config"
	"github.com/Pleasurecruise/cdk/internal/project"
)

// DistributionModeOption pairs a mode code with its display label.
type DistributionModeOption struct {
	Mode int    `json:"mode"`
	Name string `json:"name"`
}

// TrustLevelOption pairs a trust level code with its label and badge gradient.
type TrustLevelOption struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	Gradient string `json:"gradient"`
}

// FormLimits is the max-length table the form enforces client-side.
type FormLimits struct {
	ProjectName        int `json:"project_name"`
	ProjectTag         int `json:"project_tag"`
	ProjectTagCount    int `json:"project_tag_count"`
	ProjectDescription int `json:"project_description"`
	ContentItem        int `json:"content_item"`
}

// FormDefaults is the set of preselected numeric values for a new project.
type FormDefaults struct {
	DistributionMode int `json:"distribution_mode"`
	MinTrustLevel    int `json:"min_trust_level"`
	RiskThreshold    int `json:"risk_threshold"`
}

// ProjectOptionsResponse carries everything the form needs to render itself.
type ProjectOptionsResponse struct {
	DistributionModes []DistributionModeOption `json:"distribution_modes"`
	TrustLevels       []TrustLevelOption       `json:"trust_levels"`
	Limits            FormLimits               `json:"limits"`
	Defaults          FormDefaults             `json:"defaults"`
}

// ProjectController handles project form validation and form metadata.
type ProjectController struct{}

// NewProjectController creates a new ProjectController.
func NewProjectController() *ProjectController {
	return &ProjectController{}
}

// Validate handles POST /api/projects/validate
func (controller *ProjectController) Validate(c *gin.Context) {
	var form project.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, project.Validate(form))
}

// Options handles GET /api/projects/options
func (controller *ProjectController) Options(c *gin.Context) {
	modes := make([]DistributionModeOption, 0, 3)
	for _, mode := range []int{project.ModeOneCodePerUse, project.ModeLottery, project.ModeInvitation} {
		modes = append(modes, DistributionModeOption{
			Mode: mode,
			Name: project.DistributionModeName(mode),
		})
	}

	levels := make([]TrustLevelOption, 0, 5)
	for level := 0; level <= 4; level++ {
		levels = append(levels, TrustLevelOption{
			Level:    level,
			Name:     project.TrustLevelName(level),
			Gradient: project.TrustLevelGradient(level),
		})
	}

	c.JSON(http.StatusOK, ProjectOptionsResponse{
		DistributionModes: modes,
		TrustLevels:       levels,
		Limits: FormLimits{
			ProjectName:        config.ProjectNameMaxLength,
			ProjectTag:         config.ProjectTagMaxLength,
			ProjectTagCount:    config.ProjectTagMaxCount,
			ProjectDescription: config.ProjectDescriptionMaxLength,
			ContentItem:        config.ContentItemMaxLength,
		},
		Defaults: FormDefaults{
			DistributionMode: config.DefaultDistributionMode,
			MinTrustLevel:    config.DefaultMinTrustLevel,
			RiskThreshold:    config.DefaultRiskThreshold,
		},
	})
}
