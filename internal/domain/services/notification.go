package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/ports"
)

// notifyTimeLayout is the HH:MM format of the configured delivery time.
const notifyTimeLayout = "15:04"

// NotificationService builds notification payloads from daily predictions
// and delivers them through a Notifier.
type NotificationService struct {
	selector *DailySelector
	notifier ports.Notifier
	detailed bool
}

// NewNotificationService creates a notification service. With detailed set
// the body carries love/career/finance lines in addition to the general
// text.
func NewNotificationService(selector *DailySelector, notifier ports.Notifier, detailed bool) *NotificationService {
	return &NotificationService{
		selector: selector,
		notifier: notifier,
		detailed: detailed,
	}
}

// BuildPayload assembles the notification content for a sign's daily
// prediction.
func (s *NotificationService) BuildPayload(ctx context.Context, sign entities.Sign) ports.Notification {
	prediction := s.selector.TodayPrediction(ctx, sign)
	date := timeNow().Format("02.01.2006")

	title := fmt.Sprintf("%s %s - %s", sign.Symbol(), sign, date)

	body := fmt.Sprintf("🔮 %s", prediction.Texts[entities.CategoryGeneral])
	if s.detailed {
		body += fmt.Sprintf("\n\n💖 Любовь: %s", prediction.Texts[entities.CategoryLove])
		body += fmt.Sprintf("\n💼 Карьера: %s", prediction.Texts[entities.CategoryCareer])
		body += fmt.Sprintf("\n💰 Финансы: %s", prediction.Texts[entities.CategoryFinance])
	}

	return ports.Notification{Title: title, Body: body}
}

// Send builds and delivers today's notification for a sign.
func (s *NotificationService) Send(ctx context.Context, sign entities.Sign) error {
	if s.notifier == nil {
		return nil
	}
	payload := s.BuildPayload(ctx, sign)
	if err := s.notifier.Notify(ctx, payload); err != nil {
		return fmt.Errorf("delivering notification: %w", err)
	}
	return nil
}

// DeliveryScheduler fires the daily notification once per day at a
// configured local time, polling at the driver's coarse granularity.
type DeliveryScheduler struct {
	svc     *NotificationService
	driver  ports.Scheduler
	sign    entities.Sign
	at      string
	lastDay string
	log     *slog.Logger
}

// NewDeliveryScheduler creates a scheduler delivering for the given sign
// at the given HH:MM local time.
func NewDeliveryScheduler(svc *NotificationService, driver ports.Scheduler, sign entities.Sign, at string, log *slog.Logger) (*DeliveryScheduler, error) {
	if _, err := time.Parse(notifyTimeLayout, at); err != nil {
		return nil, fmt.Errorf("parsing notification time %q: %w", at, err)
	}
	return &DeliveryScheduler{
		svc:    svc,
		driver: driver,
		sign:   sign,
		at:     at,
		log:    log,
	}, nil
}

// Start begins the polling loop. It returns immediately; delivery happens
// on the driver's goroutine until the context is cancelled.
func (d *DeliveryScheduler) Start(ctx context.Context) error {
	return d.driver.Start(ctx, func(t time.Time) {
		d.tick(ctx, t)
	})
}

// Stop tears down the underlying driver.
func (d *DeliveryScheduler) Stop(ctx context.Context) error {
	return d.driver.Stop(ctx)
}

// tick delivers at most once per day, as soon as the poll time reaches the
// configured delivery time. Delivery errors are logged and retried on the
// next day's window, never fatal.
func (d *DeliveryScheduler) tick(ctx context.Context, t time.Time) {
	day := entities.DayKey(t)
	if d.lastDay == day {
		return
	}
	// HH:MM strings compare correctly lexicographically.
	if t.Format(notifyTimeLayout) < d.at {
		return
	}

	d.lastDay = day
	if err := d.svc.Send(ctx, d.sign); err != nil {
		d.log.Error("daily notification failed", "sign", d.sign.String(), "error", err)
		return
	}
	d.log.Info("daily notification delivered", "sign", d.sign.String(), "day", day)
}
