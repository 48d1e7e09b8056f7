// Package prompt collects the operator's answers for one download session.
//
// A Prompter is the terminal surface: LinePrompter reads plain lines from any
// reader, SurveyPrompter drives an interactive terminal. Elicitor asks the
// fixed question sequence over either one and returns a job.Choice.
package prompt
