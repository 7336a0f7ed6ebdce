package controller

// Message types.
type planMsg struct {
	names   []string
	target  int
	threads int
	seed    int64
}

type progressMsg struct {
	name      string
	succeeded int
	discarded int
}

type outcomeMsg struct {
	name      string
	status    string
	succeeded int
	discarded int
	args      []string
}

type summaryMsg struct {
	failed int
	total  int
}

type quitMsg struct{}
