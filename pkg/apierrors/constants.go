package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgEmptyTaskName      = "emptyTaskName"
	MsgInvalidPriority    = "invalidPriority"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailGenerateTasks  = "failGenerateTasks"
	MsgFailStats          = "failStats"
)
