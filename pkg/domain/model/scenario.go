package model

// Scenario is the mutually exclusive classification of a build event
type Scenario int

const (
	ScenarioUnknown Scenario = iota
	ScenarioTag
	ScenarioDefaultBranch
	ScenarioVersionBranch
	ScenarioOtherBranch
	ScenarioPullRequest
	ScenarioScheduled
)

func (x Scenario) String() string {
	switch x {
	case ScenarioTag:
		return "tag"
	case ScenarioDefaultBranch:
		return "default-branch"
	case ScenarioVersionBranch:
		return "version-branch"
	case ScenarioOtherBranch:
		return "other-branch"
	case ScenarioPullRequest:
		return "pull-request"
	case ScenarioScheduled:
		return "scheduled"
	default:
		return "unknown"
	}
}
