package catalog

// PolicyCatalog maps policy name to its definition, as returned by
// GET _ilm/policy.
type PolicyCatalog map[string]PolicyEntry

// PolicyEntry is one policy definition plus the resources using it.
type PolicyEntry struct {
	Version      int        `json:"version,omitempty"`
	ModifiedDate string     `json:"modified_date,omitempty"`
	Policy       PolicyBody `json:"policy"`
	InUseBy      InUseBy    `json:"in_use_by"`
}

// PolicyBody holds the phase map of a policy definition.
type PolicyBody struct {
	Phases map[string]PhaseBody `json:"phases"`
}

// PhaseBody is one phase's raw configuration. Action parameters stay
// untyped; only names and the rollover size parameters are inspected.
type PhaseBody struct {
	MinAge  string                    `json:"min_age,omitempty"`
	Actions map[string]map[string]any `json:"actions,omitempty"`
}

// InUseBy lists the resources attached to a policy.
type InUseBy struct {
	Indices             []string `json:"indices,omitempty"`
	DataStreams         []string `json:"data_streams,omitempty"`
	ComposableTemplates []string `json:"composable_templates,omitempty"`
}

// ExplainCatalog maps index name to its live lifecycle state, the
// "indices" object of GET <index>/_ilm/explain.
type ExplainCatalog map[string]ExplainEntry

// ExplainEntry is the live lifecycle state of one index.
type ExplainEntry struct {
	Index                string    `json:"index,omitempty"`
	Managed              bool      `json:"managed,omitempty"`
	Policy               string    `json:"policy,omitempty"`
	Phase                string    `json:"phase,omitempty"`
	Action               string    `json:"action,omitempty"`
	Step                 string    `json:"step,omitempty"`
	Age                  string    `json:"age,omitempty"`
	RepositoryName       string    `json:"repository_name,omitempty"`
	SnapshotName         string    `json:"snapshot_name,omitempty"`
	FailedStepRetryCount int       `json:"failed_step_retry_count,omitempty"`
	PreviousStepInfo     *StepInfo `json:"previous_step_info,omitempty"`
	StepInfo             *StepInfo `json:"step_info,omitempty"`
}

// StepInfo carries error detail attached to a lifecycle step.
type StepInfo struct {
	Type    string `json:"type,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// Snapshot bundles the three input catalogs of one analysis run.
type Snapshot struct {
	Policies PolicyCatalog
	Explain  ExplainCatalog
	Errors   ExplainCatalog
}
