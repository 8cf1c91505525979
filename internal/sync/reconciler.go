package sync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"tasksync/internal/domain"
	"tasksync/internal/logging"
	"tasksync/internal/notify"
)

// Reconciler merges the local and remote task collections into one canonical
// view and pushes convergence writes so the two stores tend toward agreement.
// All entry points run one pass at a time; a trigger arriving mid-pass is
// folded into one extra pass instead of overlapping.
type Reconciler struct {
	local        LocalStore
	remote       RemoteStore
	connectivity ConnectivitySource
	notifier     notify.Notifier

	passMu  sync.Mutex
	pending atomic.Bool
	view    []domain.Task
}

// NewReconciler creates a reconciler over the given stores.
func NewReconciler(local LocalStore, remote RemoteStore, connectivity ConnectivitySource, notifier notify.Notifier) *Reconciler {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Reconciler{
		local:        local,
		remote:       remote,
		connectivity: connectivity,
		notifier:     notifier,
	}
}

// Reconcile runs a full reconciliation pass and returns the canonical view.
// Concurrent callers are serialized; a pass runs to completion before the
// next begins.
func (r *Reconciler) Reconcile(ctx context.Context) ([]domain.Task, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()
	return r.runPasses(ctx)
}

// RequestSync schedules a reconciliation pass without blocking behind one
// already in flight: if a pass is running, the request collapses into a
// single re-run when that pass completes. Used by connectivity transitions.
func (r *Reconciler) RequestSync(ctx context.Context) {
	if !r.passMu.TryLock() {
		r.pending.Store(true)
		return
	}
	defer r.passMu.Unlock()
	if _, err := r.runPasses(ctx); err != nil {
		log.Printf("sync: reconciliation failed: %v", err)
	}
}

// View returns the canonical view produced by the most recent pass.
func (r *Reconciler) View() []domain.Task {
	r.passMu.Lock()
	defer r.passMu.Unlock()
	return r.view
}

// Add creates a task from validated inputs. If online, the remote store is
// checked for a copy with the same content first, so a retry after an earlier
// partial failure does not create a duplicate remote entry; when a copy is
// found its ID is adopted and the local write becomes an upsert onto it.
// A remote failure leaves the task unsynced without failing the add; a local
// failure fails the action.
func (r *Reconciler) Add(ctx context.Context, title string, date time.Time) (domain.Task, []domain.Task, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	online := r.connectivity.Online()
	task := domain.NewTask(title, date, online)

	if online {
		if remoteTasks, err := r.remote.GetAll(ctx); err != nil {
			log.Printf("sync: duplicate check failed, deferring push: %v", err)
			task.Synced = false
		} else if existing, found := findSameContent(remoteTasks, task); found {
			logging.Debugf("add: remote already holds task %d, adopting it", existing.ID)
			task.ID = existing.ID
			task.Synced = true
		} else if err := r.remote.Put(ctx, task); err != nil {
			log.Printf("sync: remote put failed, deferring push: %v", err)
			task.Synced = false
		}
	}

	if err := r.local.Put(ctx, task); err != nil {
		return domain.Task{}, r.view, err
	}

	r.notifier.Notify(notify.KindTaskAdded, "Task added", task.Title)

	view, err := r.runPasses(ctx)
	return task, view, err
}

// Complete marks a task completed. The local mark always happens; when the
// remote mark is skipped (offline) or fails, the task is flagged unsynced so
// a later pass pushes the completed state. Completion is one-directional.
func (r *Reconciler) Complete(ctx context.Context, id int64) ([]domain.Task, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	remoteDone := false
	if r.connectivity.Online() {
		if err := r.remote.MarkCompleted(ctx, id); err != nil {
			log.Printf("sync: remote completion failed for task %d: %v", id, err)
		} else {
			remoteDone = true
		}
	}

	if err := r.local.MarkCompleted(ctx, id); err != nil {
		return r.view, err
	}

	if !remoteDone {
		if err := r.markUnsynced(ctx, id); err != nil {
			log.Printf("sync: could not flag task %d for retry: %v", id, err)
		}
	}

	r.notifier.Notify(notify.KindTaskUpdated, "Task completed", fmt.Sprintf("task %d", id))

	return r.runPasses(ctx)
}

// Delete removes a task from both stores. When the remote store is
// unreachable the local row is removed immediately and a tombstone is kept so
// the next online pass propagates the deletion instead of resurrecting the
// task from the remote copy.
func (r *Reconciler) Delete(ctx context.Context, id int64) ([]domain.Task, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	remoteDone := false
	if r.connectivity.Online() {
		if err := r.remote.Delete(ctx, id); err != nil {
			log.Printf("sync: remote delete failed for task %d: %v", id, err)
		} else {
			remoteDone = true
		}
	}

	if !remoteDone {
		if err := r.local.PutTombstone(ctx, id); err != nil {
			log.Printf("sync: could not record tombstone for task %d: %v", id, err)
		}
	}

	if err := r.local.Delete(ctx, id); err != nil {
		return r.view, err
	}

	r.notifier.Notify(notify.KindTaskDeleted, "Task deleted", fmt.Sprintf("task %d", id))

	return r.runPasses(ctx)
}

// runPasses executes one reconciliation pass, plus one more if a RequestSync
// arrived while the pass was running. Callers must hold passMu.
func (r *Reconciler) runPasses(ctx context.Context) ([]domain.Task, error) {
	view, err := r.pass(ctx)
	for r.pending.Swap(false) {
		view, err = r.pass(ctx)
	}
	return view, err
}

// pass is one execution of the merge algorithm.
func (r *Reconciler) pass(ctx context.Context) ([]domain.Task, error) {
	local, err := r.local.GetAll(ctx)
	if err != nil {
		// Retain the previous in-memory view; a storage fault must not take
		// the application down.
		log.Printf("sync: local read failed: %v", err)
		return r.view, err
	}

	if !r.connectivity.Online() {
		r.view = local
		return local, nil
	}

	tombstones := r.propagateDeletions(ctx)

	remote, err := r.remote.GetAll(ctx)
	if err != nil {
		// Degrade to the offline path; the remote read is retried next pass.
		log.Printf("sync: remote read failed: %v", err)
		r.view = local
		return local, nil
	}

	canonical, pulled := merge(local, remote, tombstones)

	// Persist pulled tasks so they survive going offline.
	for _, task := range pulled {
		if err := r.local.Put(ctx, task); err != nil {
			log.Printf("sync: could not persist pulled task %d: %v", task.ID, err)
		}
	}

	pushed := 0
	for i, task := range canonical {
		if task.Synced {
			continue
		}
		synced := task
		synced.Synced = true
		if err := r.remote.Put(ctx, synced); err != nil {
			// Failures are isolated per task; the task stays unsynced and is
			// retried on the next pass.
			log.Printf("sync: push failed for task %d: %v", task.ID, err)
			continue
		}
		if err := r.local.Put(ctx, synced); err != nil {
			log.Printf("sync: could not persist synced flag for task %d: %v", task.ID, err)
			continue
		}
		canonical[i] = synced
		pushed++
	}

	if pushed > 0 {
		r.notifier.Notify(notify.KindSyncCompleted, "Sync completed",
			fmt.Sprintf("%d task(s) synchronized", pushed))
	}

	r.view = canonical
	return canonical, nil
}

// propagateDeletions pushes pending offline deletions to the remote store and
// returns the set of task IDs that must stay out of the merge, cleared or not.
func (r *Reconciler) propagateDeletions(ctx context.Context) map[int64]bool {
	ids, err := r.local.ListTombstones(ctx)
	if err != nil {
		log.Printf("sync: could not list tombstones: %v", err)
		return nil
	}

	deleted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		deleted[id] = true
		if err := r.remote.Delete(ctx, id); err != nil {
			log.Printf("sync: tombstone propagation failed for task %d: %v", id, err)
			continue
		}
		if err := r.local.DeleteTombstone(ctx, id); err != nil {
			log.Printf("sync: could not clear tombstone for task %d: %v", id, err)
		}
	}
	return deleted
}

// merge builds the canonical set by ID: every local task, plus each remote
// task whose ID is not already present and not pending deletion. The local
// copy wins on collision (existence-merge; a task edited differently on two
// offline clients keeps whichever copy is encountered first). The second
// return value lists the remote-only tasks the merge pulled in.
func merge(local, remote []domain.Task, deleted map[int64]bool) ([]domain.Task, []domain.Task) {
	canonical := make([]domain.Task, 0, len(local)+len(remote))
	seen := make(map[int64]bool, len(local))
	for _, task := range local {
		canonical = append(canonical, task)
		seen[task.ID] = true
	}
	var pulled []domain.Task
	for _, task := range remote {
		if seen[task.ID] || deleted[task.ID] {
			continue
		}
		canonical = append(canonical, task)
		pulled = append(pulled, task)
		seen[task.ID] = true
	}
	return canonical, pulled
}

// markUnsynced flags a locally-changed task for a push on the next pass.
func (r *Reconciler) markUnsynced(ctx context.Context, id int64) error {
	task, err := r.local.Get(ctx, id)
	if err != nil {
		return err
	}
	task.Synced = false
	return r.local.Put(ctx, task)
}

// findSameContent locates a task with identical user-visible content.
func findSameContent(tasks []domain.Task, target domain.Task) (domain.Task, bool) {
	for _, task := range tasks {
		if target.SameContent(task) {
			return task, true
		}
	}
	return domain.Task{}, false
}
