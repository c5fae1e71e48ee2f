package modules

import (
	"nocslol/api/handlers"
	submissionservice "nocslol/api/services/submission"
)

func initializeSubmissionHandler(deps *ModuleDependencies) *handlers.SubmissionHandler {
	submissionService := submissionservice.NewSubmissionService(deps.Webhook)

	return handlers.NewSubmissionHandler(&handlers.SubmissionHandlerDependencies{
		SubmissionService: submissionService,
	})
}
