// internal/realtime/priority_linux.go
//go:build linux

package realtime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fifoPriority sits high in the 1..99 real-time band without starving
// kernel threads pinned at 99.
const fifoPriority = 80

// elevate walks the scheduling ladder for the calling thread, from
// SCHED_DEADLINE down to a niceness bump. Every refusal falls through to
// the next rung; the last rung always succeeds.
func elevate(h Hints) Grant {
	if h.Period > 0 {
		budget := h.Budget
		if budget <= 0 || budget > h.Period {
			budget = h.Period / 2
		}
		attr := unix.SchedAttr{
			Size:     unix.SizeofSchedAttr,
			Policy:   unix.SCHED_DEADLINE,
			Runtime:  uint64(budget.Nanoseconds()),
			Deadline: uint64(h.Period.Nanoseconds()),
			Period:   uint64(h.Period.Nanoseconds()),
		}
		if err := unix.SchedSetAttr(0, &attr, 0); err == nil {
			return Grant{Policy: "SCHED_DEADLINE", Realtime: true}
		}
	}

	for _, rung := range []struct {
		policy uint32
		name   string
	}{
		{unix.SCHED_FIFO, "SCHED_FIFO"},
		{unix.SCHED_RR, "SCHED_RR"},
	} {
		attr := unix.SchedAttr{
			Size:     unix.SizeofSchedAttr,
			Policy:   rung.policy,
			Priority: fifoPriority,
		}
		if err := unix.SchedSetAttr(0, &attr, 0); err == nil {
			return Grant{Policy: rung.name, Realtime: true}
		}
	}

	return bestEffort()
}

// bestEffort raises niceness as far as the process is allowed to.
func bestEffort() Grant {
	for _, nice := range []int{-20, -10, -5} {
		if err := unix.Setpriority(unix.PRIO_PROCESS, 0, nice); err == nil {
			return Grant{Policy: fmt.Sprintf("nice %d", nice)}
		}
	}
	return Grant{Policy: "default"}
}
