package main

import (
	"log"
	"os"

	"github.com/edumanage/portal/api"
	"github.com/edumanage/portal/core"
	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/activity"
	"github.com/edumanage/portal/core/finance"
	"github.com/edumanage/portal/core/messaging"
	"github.com/edumanage/portal/core/school"
	"github.com/edumanage/portal/core/session"
	"github.com/edumanage/portal/core/timetable"
	"github.com/edumanage/portal/services/logger"
	"github.com/edumanage/portal/services/notifier"
	"github.com/edumanage/portal/services/paystack"
	"github.com/edumanage/portal/services/push"
)

var std *log.Logger

func main() {
	defer os.Exit(0)

	std = log.New(os.Stdout, "", 0)
	appLogger := logsvc.NewRollbarLogger(std)
	appLogger.Enable(!core.Conf.GetBool("debug"))

	tokens := session.NewFileStore()
	client := api.NewClient(session.TokenSource(tokens))
	notify := notifiersvc.NewConsoleNotifier(std)

	sessionSvc := session.NewService(client, tokens)
	feed := pushsvc.NewFeed()

	schoolSvc := school.NewService(client)
	financeSvc := finance.NewService(client)
	activitySvc := activity.NewService(client)

	cli := commandLine{
		session:   sessionSvc,
		school:    schoolSvc,
		finance:   financeSvc,
		academics: academics.NewService(client),
		timetable: timetable.NewService(client),
		activity:  activitySvc,
		messaging: messaging.NewService(client),
		paystack:  paystacksvc.NewService(client),

		students:     school.NewStudentStore(schoolSvc, notify),
		teachers:     school.NewTeacherStore(schoolSvc, notify),
		parents:      school.NewParentStore(schoolSvc, notify),
		parentRecord: school.NewSingleParentStore(schoolSvc, notify),
		classes:      school.NewClassStore(schoolSvc, notify),
		subjects:     school.NewSubjectStore(schoolSvc, notify),
		invoices:     finance.NewInvoiceStore(financeSvc, notify),
		activities:   activity.NewActivityStore(activitySvc, notify),

		feed:     feed,
		push:     pushsvc.NewSubscriber(feed, session.TokenSource(tokens), appLogger),
		notifier: notify,
	}

	if err := cli.run(os.Args); err != nil {
		switch {
		case err == errHelp:
		case core.IsSessionExpired(err):
			// single expiry handler: drop the token, tell the user once
			if cerr := sessionSvc.Expire(); cerr != nil {
				appLogger.Error("clearing expired session", cerr)
			}
			notify.Warn("Session expired. Please log in again.")
		default:
			std.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}
