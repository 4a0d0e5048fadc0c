package initializers

import (
	"context"
	"job-board-backend/config"
	"job-board-backend/fiberlog"
	applicationhandler "job-board-backend/lib/application"
	authhandler "job-board-backend/lib/auth"
	pdfexport "job-board-backend/lib/export/pdf"
	xlsexport "job-board-backend/lib/export/xls"
	postinghandler "job-board-backend/lib/posting"
	recruiterhandler "job-board-backend/lib/recruiter"
	seekerhandler "job-board-backend/lib/seeker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	authhandler.NewHandler()
	seekerhandler.NewHandler()
	recruiterhandler.NewHandler()
	postinghandler.NewHandler()
	applicationhandler.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
}
