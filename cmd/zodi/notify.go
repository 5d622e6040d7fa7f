package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/ports"
	"github.com/ersonp/zodi-core/internal/domain/services"
	"github.com/ersonp/zodi-core/internal/infrastructure/notify"
	"github.com/ersonp/zodi-core/internal/infrastructure/scheduler"
)

func newNotifyCmd() *cobra.Command {
	var (
		signName string
		at       string
		once     bool
		console  bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Deliver the daily prediction as a notification",
		Long:  "Fires the daily notification once, or runs in the foreground and delivers it every day at the configured time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return runNotify(cmd, deps, signName, at, once, console)
			})
		},
	}

	cmd.Flags().StringVarP(&signName, "sign", "s", "", "Sign to notify for (defaults to the profile's sign)")
	cmd.Flags().StringVar(&at, "at", "", "Daily delivery time HH:MM (defaults to config)")
	cmd.Flags().BoolVar(&once, "once", false, "Deliver immediately and exit")
	cmd.Flags().BoolVar(&console, "console", false, "Print to stdout instead of using notify-send")

	return cmd
}

func runNotify(cmd *cobra.Command, deps *Deps, signName, at string, once, console bool) error {
	ctx := cmd.Context()

	sign := profileSign(deps)
	if signName != "" {
		sign, _ = entities.ParseSign(signName)
	}
	if !sign.Valid() {
		return fmt.Errorf("no sign to notify for: set a profile or pass --sign")
	}

	var notifier ports.Notifier
	if console {
		notifier = notify.NewConsoleNotifier(os.Stdout)
	} else {
		notifier = notify.NewDesktopNotifier(NotifyDuration)
	}

	svc := services.NewNotificationService(deps.Selector, notifier, deps.Config.Notify.Detailed)

	if once {
		return svc.Send(ctx, sign)
	}

	if at == "" {
		at = deps.Config.Notify.At
	}

	delivery, err := services.NewDeliveryScheduler(svc, scheduler.NewPollScheduler(PollInterval), sign, at, deps.Log)
	if err != nil {
		return err
	}
	if err := delivery.Start(ctx); err != nil {
		return fmt.Errorf("starting notification scheduler: %w", err)
	}
	defer delivery.Stop(ctx)

	deps.Log.Info("notification daemon running", "sign", sign.String(), "at", at)
	<-ctx.Done()
	return nil
}
