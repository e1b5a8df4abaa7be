// Package lib holds supporting modules that do not fit strictly into
// the handler/service/repository layers.
//
// It contains background job processing (Redis/Asynq) and the
// Resend email client used for employee notifications.
package lib
