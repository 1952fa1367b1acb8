package kernel

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// maxQueuedWakes bounds the interrupt-to-executor wake queue. Each task holds at most
// one entry at a time, so this is also the number of tasks that may be woken between
// two scheduler passes.
const maxQueuedWakes = 100

// TaskID identifies a spawned task. IDs are never reused.
type TaskID uint64

// Task is a cooperative unit of execution.
//
// Poll advances the task as far as it can without blocking. It returns Ready when the
// task has finished, or Pending after registering ctx.Waker() with whatever it waits on.
type Task interface {
	Poll(ctx *Context) Poll
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(ctx *Context) Poll

func (f TaskFunc) Poll(ctx *Context) Poll { return f(ctx) }

// TaskState is the scheduler's view of a task.
type TaskState uint8

const (
	TaskRunnable TaskState = iota
	TaskWaiting
)

func (s TaskState) String() string {
	switch s {
	case TaskRunnable:
		return "runnable"
	case TaskWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

type taskState struct {
	task  Task
	state TaskState
	waker *Waker
	polls uint64
}

// Executor is a single-threaded cooperative scheduler.
//
// Tasks move between two states: Runnable tasks are polled on the next pass; a task whose
// poll returns Pending becomes Waiting and is not polled again until its Waker fires.
// Wakers may fire from interrupt context; they only push onto a lock-free queue which the
// executor drains at the start of every pass.
type Executor struct {
	cpu CPU
	log logrus.FieldLogger

	tasks    map[TaskID]*taskState
	runnable []TaskID
	spare    []TaskID
	wakes    *Queue[TaskID]

	nextID TaskID

	onPanic  PanicHandler
	panicked atomic.Bool
}

// NewExecutor creates an executor that halts cpu while idle.
func NewExecutor(cpu CPU, log logrus.FieldLogger) *Executor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Executor{
		cpu:   cpu,
		log:   log.WithField("component", "executor"),
		tasks: make(map[TaskID]*taskState),
		wakes: NewQueue[TaskID](maxQueuedWakes),
	}
}

// Spawn registers t as runnable and returns its ID.
func (e *Executor) Spawn(t Task) TaskID {
	id := e.nextID
	e.nextID++
	e.tasks[id] = &taskState{
		task:  t,
		state: TaskRunnable,
		waker: &Waker{id: id, e: e},
	}
	e.runnable = append(e.runnable, id)
	e.log.WithField("task", id).Debug("spawned")
	return id
}

// Len returns the number of live tasks.
func (e *Executor) Len() int { return len(e.tasks) }

// State reports the state of a live task.
func (e *Executor) State(id TaskID) (TaskState, bool) {
	st, ok := e.tasks[id]
	if !ok {
		return 0, false
	}
	return st.state, true
}

// Run drives all tasks forever, halting the CPU whenever nothing is runnable.
func (e *Executor) Run() {
	for {
		e.Step()
	}
}

// Step runs one scheduler pass and halts if the pass left nothing runnable.
func (e *Executor) Step() {
	e.RunReady()
	e.sleepIfIdle()
}

// RunReady polls every runnable task once, in wake order.
func (e *Executor) RunReady() {
	e.collectWakes()

	ready := e.runnable
	e.runnable = e.spare[:0]
	for _, id := range ready {
		st, ok := e.tasks[id]
		if !ok {
			continue
		}
		ctx := Context{e: e, taskID: id, waker: st.waker}
		if e.poll(st, &ctx) == Ready {
			delete(e.tasks, id)
			e.log.WithField("task", id).Debug("completed")
			continue
		}
		st.state = TaskWaiting
	}
	e.spare = ready[:0]
}

func (e *Executor) collectWakes() {
	for {
		id, ok := e.wakes.Pop()
		if !ok {
			return
		}
		st, ok := e.tasks[id]
		if !ok {
			continue
		}
		st.waker.queued.Store(false)
		if st.state != TaskWaiting {
			continue
		}
		st.state = TaskRunnable
		e.runnable = append(e.runnable, id)
	}
}

func (e *Executor) poll(st *taskState, ctx *Context) (res Poll) {
	st.polls++
	defer func() {
		if r := recover(); r != nil {
			e.taskPanicked(ctx.taskID, st, r)
			res = Ready
		}
	}()
	return st.task.Poll(ctx)
}

func (e *Executor) sleepIfIdle() {
	if e.cpu == nil {
		return
	}
	e.cpu.DisableInterrupts()
	if len(e.runnable) == 0 && e.wakes.Empty() {
		e.cpu.EnableAndHalt()
		return
	}
	e.cpu.EnableInterrupts()
}

func (e *Executor) wakeOverflow(id TaskID) {
	e.log.WithField("task", id).Error("wake queue full; dropping wake")
}
