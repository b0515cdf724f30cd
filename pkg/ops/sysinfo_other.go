//go:build !linux && !darwin && !freebsd

package ops

import "opskit/pkg/models"

func uname(*models.SystemInfo) {}
