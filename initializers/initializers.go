package initializers

import (
	"context"

	"hr-missions-backend/config"
	"hr-missions-backend/fiberlog"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	authhandler "hr-missions-backend/lib/auth"
	employeehandler "hr-missions-backend/lib/employee"
	missionhandler "hr-missions-backend/lib/mission"
	notificationhandler "hr-missions-backend/lib/notification"
	recruitmentreqhandler "hr-missions-backend/lib/recruitment-req"
	"hr-missions-backend/lib/sequence"
	workflowhandler "hr-missions-backend/lib/workflow"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	sequence.NewHandler()
	employeehandler.NewHandler()
	approvalflowhandler.NewHandler()
	notificationhandler.NewHandler()
	// workflow держит ссылку на notificationhandler.Instance, порядок важен
	workflowhandler.NewHandler()
	recruitmentreqhandler.NewHandler()
	missionhandler.NewHandler()
	authhandler.NewHandler()
}
