package recommendation

import (
	"strings"

	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

// Template placeholders
const (
	PlaceholderAssetName     = "{assetName}"
	PlaceholderAssetCategory = "{assetCategory}"
)

// template is a catalog entry whose description may carry placeholders
type template struct {
	title       string
	description string
}

var quickWinTemplates = [...]template{
	{
		title:       "Document Critical Processes",
		description: "Create detailed documentation for critical processes related to {assetName}. Include step-by-step procedures, key contacts, and troubleshooting guides.",
	},
	{
		title:       "Implement Knowledge Sharing Sessions",
		description: "Schedule regular knowledge sharing sessions for {assetName} to ensure multiple team members understand its operation and maintenance.",
	},
	{
		title:       "Cross-Train Personnel",
		description: "Identify and cross-train backup personnel who can step in if the primary resource for {assetName} becomes unavailable.",
	},
	{
		title:       "Conduct Detailed Risk Assessment",
		description: "Perform a more detailed risk assessment for {assetName} to identify specific vulnerabilities and mitigation strategies.",
	},
	{
		title:       "Create Emergency Contact List",
		description: "Develop an emergency contact list for {assetName} including all key stakeholders, vendors, and support resources.",
	},
}

var mediumTermTemplates = [...]template{
	{
		title:       "Develop Redundancy Strategy",
		description: "Design and implement a redundancy strategy for {assetName} to ensure business continuity in case of failure or loss.",
	},
	{
		title:       "Identify Alternative Vendors/Partners",
		description: "Research and establish relationships with alternative vendors or partners who could serve as backups for {assetName}.",
	},
	{
		title:       "Create Successor Planning Program",
		description: "Develop a formal successor planning program for key personnel associated with {assetName}.",
	},
	{
		title:       "Distribute Responsibility",
		description: "Reorganize responsibilities related to {assetName} to distribute knowledge and authority across multiple team members.",
	},
	{
		title:       "Conduct Continuity Drills",
		description: "Plan and execute continuity drills to test resilience without {assetName} and identify gaps in preparedness.",
	},
}

var longTermTemplates = [...]template{
	{
		title:       "Restructure Dependency Architecture",
		description: "Fundamentally restructure how your organization depends on {assetName} to build greater resilience into your operational model.",
	},
	{
		title:       "Strategic Diversification Plan",
		description: "Develop a long-term diversification plan to reduce overall dependency on {assetCategory} resources like {assetName}.",
	},
	{
		title:       "Automation and Digitization",
		description: "Invest in automation and digitization to reduce dependency on individual resources and create more resilient systems around {assetName}.",
	},
	{
		title:       "Implement Resilient Design Principles",
		description: "Incorporate resilient design principles in all future developments related to {assetCategory} to avoid creating new critical dependencies.",
	},
	{
		title:       "Foster Culture of Resilience",
		description: "Develop training programs and incentives to foster a culture of resilience and preparedness across the organization.",
	},
}

// templates returns the catalog for a horizon
func templates(h types.Horizon) []template {
	switch h {
	case types.HorizonQuickWins:
		return quickWinTemplates[:]
	case types.HorizonMediumTerm:
		return mediumTermTemplates[:]
	case types.HorizonLongTerm:
		return longTermTemplates[:]
	default:
		return nil
	}
}

// industryRecommendation is a curated entry bound to a horizon
type industryRecommendation struct {
	horizon types.Horizon
	model.Recommendation
}

var sportsRecommendations = [...]industryRecommendation{
	{
		horizon: types.HorizonQuickWins,
		Recommendation: model.Recommendation{
			Title:       "Implement Player Wellness Monitoring",
			Description: "Deploy player wellness tracking systems to identify early warning signs of potential injury or performance issues for key players.",
		},
	},
	{
		horizon: types.HorizonMediumTerm,
		Recommendation: model.Recommendation{
			Title:       "Develop Bench Strength",
			Description: "Create a structured development program for bench players to ensure they can effectively substitute for star players when needed.",
		},
	},
	{
		horizon: types.HorizonLongTerm,
		Recommendation: model.Recommendation{
			Title:       "Build Team-First Culture",
			Description: "Invest in building a team-first culture that can withstand the loss of individual star players while maintaining performance.",
		},
	},
}

var technologyRecommendations = [...]industryRecommendation{
	{
		horizon: types.HorizonQuickWins,
		Recommendation: model.Recommendation{
			Title:       "Document System Architecture",
			Description: "Create comprehensive documentation of system architecture, dependencies, and recovery procedures.",
		},
	},
	{
		horizon: types.HorizonMediumTerm,
		Recommendation: model.Recommendation{
			Title:       "Implement Service Redundancy",
			Description: "Design and implement redundant services across multiple availability zones or regions to eliminate single points of failure.",
		},
	},
	{
		horizon: types.HorizonLongTerm,
		Recommendation: model.Recommendation{
			Title:       "Adopt Microservices Architecture",
			Description: "Gradually migrate from monolithic systems to microservices architecture to improve resilience and scalability.",
		},
	},
}

// industryRecommendations returns the curated entries for an industry. Most
// industries have none.
func industryRecommendations(i types.Industry) []industryRecommendation {
	switch i {
	case types.IndustrySports:
		return sportsRecommendations[:]
	case types.IndustryTechnology:
		return technologyRecommendations[:]
	case types.IndustryFinance,
		types.IndustryHealthcare,
		types.IndustryRetail,
		types.IndustryManufacturing,
		types.IndustryEducation,
		types.IndustryProfessional,
		types.IndustryEntertainment,
		types.IndustryOther:
		return nil
	default:
		return nil
	}
}

// diversificationStrategy is added when dependencies are too concentrated
var diversificationStrategy = model.Recommendation{
	Title:       "Develop Formal Diversification Strategy",
	Description: "Create a comprehensive strategy to diversify dependencies across all critical categories.",
}

// defaultRecommendation fills a bucket that would otherwise be empty
func defaultRecommendation(h types.Horizon) model.Recommendation {
	switch h {
	case types.HorizonQuickWins:
		return model.Recommendation{
			Title:       "Conduct Comprehensive Resilience Assessment",
			Description: "Perform a more detailed resilience assessment across all departments to identify additional vulnerabilities and opportunities for improvement.",
		}
	case types.HorizonMediumTerm:
		return model.Recommendation{
			Title:       "Develop Organization-Wide Resilience Policy",
			Description: "Create a formal resilience policy that establishes guidelines, responsibilities, and procedures for maintaining operational continuity.",
		}
	case types.HorizonLongTerm:
		return model.Recommendation{
			Title:       "Invest in Resilience Training",
			Description: "Develop a comprehensive training program to build resilience awareness and skills across all levels of the organization.",
		}
	default:
		return model.Recommendation{}
	}
}

// categoryStrategy targets the weakest category by its display name
func categoryStrategy(c types.Category) model.Recommendation {
	name := c.DisplayName()
	return model.Recommendation{
		Title:       name + " Resilience Strategy",
		Description: "Develop a focused resilience strategy for your " + strings.ToLower(name) + " assets, which currently represent your most vulnerable category.",
	}
}

// Substitute replaces {assetName} and {assetCategory} in s. A placeholder
// whose value is empty is left as is.
func Substitute(s, assetName, assetCategory string) string {
	pairs := make([]string, 0, 4)
	if assetName != "" {
		pairs = append(pairs, PlaceholderAssetName, assetName)
	}
	if assetCategory != "" {
		pairs = append(pairs, PlaceholderAssetCategory, assetCategory)
	}
	if len(pairs) == 0 {
		return s
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
