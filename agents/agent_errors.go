package agents

import "errors"

var (
	DuplicateCodeErr = errors.New("agent code already exists")
	AgentNotFoundErr = errors.New("agent not found")
)
