package constvars

const (
	URLParamPatientID  = "patient_id"
	URLParamScheduleID = "schedule_id"
)

const (
	ScheduleActionCreated = "created"
	ScheduleActionUpdated = "updated"
)

const ScheduleDateUniqueConstraint = "uq_schedules_date"
