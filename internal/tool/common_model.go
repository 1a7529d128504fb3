package tool

// CheckResult is the outcome of a single configuration check.
type CheckResult struct {
	Component string `json:"component" jsonschema:"checked component: mailgun, sponsors, senders or template"`
	OK        bool   `json:"ok" jsonschema:"whether the check passed"`
	Error     string `json:"error,omitempty" jsonschema:"why the check failed"`
}
