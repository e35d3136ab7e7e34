//go:generate go tool go-enum --no-iota --values
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	maxNConcurrentMailRequests = 100
	nMailWorkers               = 1
)

// ENUM(
//
//	Verification,
//	PasswordReset,
//	Invitation,
//	ApplicationDecision,
//
// )
type MailTaskRequestID int

// MailWorker serializes outgoing email behind a channel so a slow SMTP relay
// never blocks a request handler. Failures are logged and counted, not
// surfaced to the user.
type MailWorker struct {
	mailer *Mailer

	in chan MailTaskRequest
}

type MailTaskRequest struct {
	Type    MailTaskRequestID
	Payload MailMessage
}

func (mtr MailTaskRequest) String() string {
	return fmt.Sprintf("<MailTaskRequest of type %s>", mtr.Type)
}

func NewMailWorker(mailer *Mailer) *MailWorker {
	w := &MailWorker{
		mailer: mailer,
		in:     make(chan MailTaskRequest, maxNConcurrentMailRequests),
	}

	for i := range nMailWorkers {
		go w.worker(i)
	}

	return w
}

func (w *MailWorker) worker(workerID int) {
	for {
		req := <-w.in
		log.Debug().Int("worker", workerID).Stringer("request", req).Msg("sending mail")
		if err := w.mailer.Send(req.Payload); err != nil {
			mailsSent.WithLabelValues("error").Inc()
			log.Error().Err(err).Stringer("request", req).Msg("sending mail failed")
		} else {
			mailsSent.WithLabelValues("ok").Inc()
		}
	}
}

func (w *MailWorker) enqueue(req MailTaskRequest) {
	select {
	case w.in <- req:
	default:
		mailsSent.WithLabelValues("dropped").Inc()
		log.Error().Stringer("request", req).Msg("mail queue full, dropping")
	}
}

func (w *MailWorker) SendVerification(to, link string) {
	w.enqueue(MailTaskRequest{
		Type: MailTaskRequestIDVerification,
		Payload: MailMessage{
			To:      to,
			Subject: "Confirm your email address",
			Body:    "Follow this link to confirm your email address:\r\n\r\n" + link + "\r\n",
		},
	})
}

func (w *MailWorker) SendPasswordReset(to, link string) {
	w.enqueue(MailTaskRequest{
		Type: MailTaskRequestIDPasswordReset,
		Payload: MailMessage{
			To:      to,
			Subject: "Reset your password",
			Body:    "Follow this link to choose a new password:\r\n\r\n" + link + "\r\n\r\nIf you did not request this, you can ignore this email.\r\n",
		},
	})
}

func (w *MailWorker) SendInvitation(to, link string) {
	w.enqueue(MailTaskRequest{
		Type: MailTaskRequestIDInvitation,
		Payload: MailMessage{
			To:      to,
			Subject: "You have been invited",
			Body:    "You have been invited to create an account. Follow this link to register:\r\n\r\n" + link + "\r\n",
		},
	})
}

func (w *MailWorker) SendApplicationDecision(to, animalName, decision, link string) {
	w.enqueue(MailTaskRequest{
		Type: MailTaskRequestIDApplicationDecision,
		Payload: MailMessage{
			To:      to,
			Subject: fmt.Sprintf("Update on your application for %s", animalName),
			Body:    fmt.Sprintf("Your adoption application for %s has been %s.\r\n\r\n%s\r\n", animalName, decision, link),
		},
	})
}
