package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldPaths    = "paths"
	FieldFilename = "filename"
	FieldDuration = "duration"

	// Call observability fields. Platform identifies the caller but
	// never influences behavior.
	FieldRunID    = "run_id"
	FieldPlatform = "platform"

	// Analysis fields.
	FieldLanguage = "language"
	FieldLayers   = "layers"
	FieldLayer    = "layer"
	FieldRule     = "rule"
	FieldIssues   = "issues"
	FieldFixes    = "fixes"
	FieldDryRun   = "dry_run"
	FieldSeverity = "severity"
	FieldFixable  = "fixable"

	// Run statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesModified   = "files_modified"
	FieldJobs            = "jobs"
	FieldWorkingDir      = "working_dir"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
