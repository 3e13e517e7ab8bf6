package ciutil

import "os"

// Environment variables used for CI detection.
const (
	EnvCI               = "CI"
	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubWorkspace  = "GITHUB_WORKSPACE"
	EnvGitHubRunID      = "GITHUB_RUN_ID"
	EnvGitHubSHA        = "GITHUB_SHA"
	EnvGitLabCI         = "GITLAB_CI"
	EnvGitLabProjectDir = "CI_PROJECT_DIR"
	EnvGitLabJobID      = "CI_JOB_ID"
	EnvGitLabCommitSHA  = "CI_COMMIT_SHA"
	EnvJenkinsURL       = "JENKINS_URL"
	EnvTravisCI         = "TRAVIS"
	EnvCircleCI         = "CIRCLECI"
)

// IsCI returns true if the current environment is a CI environment.
// It checks for common CI environment variables across different CI providers.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvTravisCI) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// IsGitHubActions returns true if the current environment is GitHub Actions.
func IsGitHubActions() bool {
	return os.Getenv(EnvGitHubActions) != "" && os.Getenv(EnvGitHubWorkspace) != ""
}

// IsGitLabCI returns true if the current environment is GitLab CI.
func IsGitLabCI() bool {
	return os.Getenv(EnvGitLabCI) != "" && os.Getenv(EnvGitLabProjectDir) != ""
}

// Provider names the CI system, or returns "" outside CI.
func Provider() string {
	switch {
	case IsGitHubActions():
		return "github_actions"
	case IsGitLabCI():
		return "gitlab_ci"
	case os.Getenv(EnvJenkinsURL) != "":
		return "jenkins"
	case os.Getenv(EnvTravisCI) != "":
		return "travis"
	case os.Getenv(EnvCircleCI) != "":
		return "circleci"
	case IsCI():
		return "unknown"
	default:
		return ""
	}
}

// Metadata returns attributes describing the CI job. Keys with no value in
// the environment are omitted. It returns an empty map outside CI.
func Metadata() map[string]string {
	md := make(map[string]string)
	provider := Provider()
	if provider == "" {
		return md
	}
	md["ci_provider"] = provider

	add := func(key, env string) {
		if v := os.Getenv(env); v != "" {
			md[key] = v
		}
	}
	switch provider {
	case "github_actions":
		add("ci_run_id", EnvGitHubRunID)
		add("ci_commit", EnvGitHubSHA)
	case "gitlab_ci":
		add("ci_run_id", EnvGitLabJobID)
		add("ci_commit", EnvGitLabCommitSHA)
	}
	return md
}
