package catchall

// ArgType is the JSON type of a tool argument.
type ArgType string

const (
	ArgString  ArgType = "string"
	ArgInteger ArgType = "integer"
)

// ArgSpec describes one tool argument. Arguments with a non-nil Default are
// always sent upstream, even when the caller omits them.
type ArgSpec struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
	Default     any
}

// ToolTemplate is one row of the declarative request table: everything
// needed to register a tool and to build its upstream request. Path segments
// of the form {name} are filled from the argument of the same name.
type ToolTemplate struct {
	Name        string
	Description string
	Method      string
	Path        string
	BodyArgs    []string
	QueryArgs   []string
	Args        []ArgSpec
	// RequireOneOf lists argument names of which at least one must be
	// supplied (used by update_monitor).
	RequireOneOf []string
}

var jobIDArg = ArgSpec{
	Name:        "job_id",
	Type:        ArgString,
	Description: "The job ID returned from submit_query",
	Required:    true,
}

var monitorIDArg = ArgSpec{
	Name:        "monitor_id",
	Type:        ArgString,
	Description: "The monitor ID returned from create_monitor",
	Required:    true,
}

var pullArgs = []ArgSpec{
	jobIDArg,
	{Name: "page", Type: ArgInteger, Description: "Page number for pagination (default: 1)", Default: 1},
	{Name: "page_size", Type: ArgInteger, Description: "Number of results per page (default: 100, max: 100)", Default: 100},
}

var templates = []ToolTemplate{
	{
		Name: "submit_query",
		Description: "Submit a natural language query to search for news articles. " +
			"The system will fetch, validate, cluster, and summarize relevant articles. " +
			"Returns a job_id to check status and retrieve results with.",
		Method:   "POST",
		Path:     "/catchAll/submit",
		BodyArgs: []string{"query"},
		Args: []ArgSpec{
			{Name: "query", Type: ArgString, Description: "Natural language query to search for news (e.g., 'Find all M&A deals in tech sector last 7 days')", Required: true},
		},
	},
	{
		Name: "submit_url",
		Description: "Submit a URL for article extraction. " +
			"Returns a job_id to check status and retrieve results with.",
		Method:   "POST",
		Path:     "/catchAll/submit",
		BodyArgs: []string{"url", "extraction_type", "webhook"},
		Args: []ArgSpec{
			{Name: "url", Type: ArgString, Description: "URL to extract articles from", Required: true},
			{Name: "extraction_type", Type: ArgString, Description: "Type of extraction to run on the URL", Required: true},
			{Name: "webhook", Type: ArgString, Description: "Optional webhook URL notified when the job completes"},
		},
	},
	{
		Name: "get_job_status",
		Description: "Check the status of a submitted job. " +
			"Status progression: submitted -> analyzing -> fetching -> clustering -> enriching -> completed.",
		Method: "GET",
		Path:   "/catchAll/status/{job_id}",
		Args:   []ArgSpec{jobIDArg},
	},
	{
		Name: "pull_results",
		Description: "Retrieve the results of a completed job: clustered and summarized news articles. " +
			"Only call this after get_job_status shows the job is complete.",
		Method:    "GET",
		Path:      "/catchAll/pull/{job_id}",
		QueryArgs: []string{"page", "page_size"},
		Args:      pullArgs,
	},
	{
		Name: "pull_job_results",
		Description: "Retrieve the results of a completed job: clustered and summarized news articles. " +
			"Only call this after get_job_status shows the job is complete.",
		Method:    "GET",
		Path:      "/catchAll/pull/{job_id}",
		QueryArgs: []string{"page", "page_size"},
		Args:      pullArgs,
	},
	{
		Name:        "list_user_jobs",
		Description: "List all jobs submitted by you, with IDs, queries, statuses, and timestamps.",
		Method:      "GET",
		Path:        "/catchAll/jobs/user",
		QueryArgs:   []string{"status", "limit", "offset"},
		Args: []ArgSpec{
			{Name: "status", Type: ArgString, Description: "Filter jobs by status"},
			{Name: "limit", Type: ArgInteger, Description: "Maximum number of jobs to return"},
			{Name: "offset", Type: ArgInteger, Description: "Number of jobs to skip"},
		},
	},
	{
		Name:        "continue_job",
		Description: "Continue processing a job that needs more data. Use this when a job requires additional article fetching.",
		Method:      "POST",
		Path:        "/catchAll/continue",
		BodyArgs:    []string{"job_id"},
		Args:        []ArgSpec{{Name: "job_id", Type: ArgString, Description: "The job ID to continue processing", Required: true}},
	},
	{
		Name:        "create_monitor",
		Description: "Create a monitor that re-runs a URL extraction on a schedule.",
		Method:      "POST",
		Path:        "/catchAll/monitors/create",
		BodyArgs:    []string{"url", "schedule", "name"},
		Args: []ArgSpec{
			{Name: "url", Type: ArgString, Description: "URL the monitor should watch", Required: true},
			{Name: "schedule", Type: ArgString, Description: "Cron-style schedule for the monitor", Required: true},
			{Name: "name", Type: ArgString, Description: "Optional display name for the monitor"},
		},
	},
	{
		Name:        "list_monitors",
		Description: "List all monitors you have created.",
		Method:      "GET",
		Path:        "/catchAll/monitors/",
	},
	{
		Name:        "get_monitor_jobs",
		Description: "List the jobs spawned by a monitor.",
		Method:      "GET",
		Path:        "/catchAll/monitors/{monitor_id}/jobs",
		Args:        []ArgSpec{monitorIDArg},
	},
	{
		Name:        "pull_monitor_results",
		Description: "Retrieve the latest results collected by a monitor.",
		Method:      "GET",
		Path:        "/catchAll/monitors/pull/{monitor_id}",
		Args:        []ArgSpec{monitorIDArg},
	},
	{
		Name:        "enable_monitor",
		Description: "Enable a disabled monitor.",
		Method:      "POST",
		Path:        "/catchAll/monitors/{monitor_id}/enable",
		Args:        []ArgSpec{monitorIDArg},
	},
	{
		Name:        "disable_monitor",
		Description: "Disable a monitor without deleting it.",
		Method:      "POST",
		Path:        "/catchAll/monitors/{monitor_id}/disable",
		Args:        []ArgSpec{monitorIDArg},
	},
	{
		Name:         "update_monitor",
		Description:  "Update a monitor's name and/or schedule. At least one of the two must be supplied.",
		Method:       "PATCH",
		Path:         "/catchAll/monitors/{monitor_id}",
		BodyArgs:     []string{"name", "schedule"},
		RequireOneOf: []string{"name", "schedule"},
		Args: []ArgSpec{
			monitorIDArg,
			{Name: "name", Type: ArgString, Description: "New display name for the monitor"},
			{Name: "schedule", Type: ArgString, Description: "New cron-style schedule for the monitor"},
		},
	},
}

// Templates returns the full tool-template table. Both tool registration and
// request construction are driven from this single table.
func Templates() []ToolTemplate {
	return templates
}
