package service

import "time"

// SetTaskClock replaces the clock used by a TaskService created by NewTaskService.
func SetTaskClock(svc TaskService, now func() time.Time) {
	svc.(*taskServiceImpl).now = now
}
