package ds

// Draft is the form state of a work order being filled in by its technician.
// It is persisted into the work order only by save or complete.
type Draft struct {
	SessionID      string       `json:"session_id"`
	WorkOrderID    string       `json:"work_order_id"`
	Findings       string       `json:"findings"`
	Advice         string       `json:"advice"`
	JobDone        bool         `json:"job_done"`
	FollowUpNeeded bool         `json:"follow_up_needed"`
	Materials      MaterialList `json:"materials"`
	PhotoURLs      PhotoList    `json:"photo_urls"`
}

// NewDraft seeds a draft from the stored work order.
func NewDraft(sessionID string, w *WorkOrder) *Draft {
	d := &Draft{
		SessionID:      sessionID,
		WorkOrderID:    w.ID,
		JobDone:        w.JobDone,
		FollowUpNeeded: w.FollowUpNeeded,
		Materials:      append(MaterialList{}, w.Materials...),
		PhotoURLs:      append(PhotoList{}, w.PhotoURLs...),
	}
	if w.Findings != nil {
		d.Findings = *w.Findings
	}
	if w.Advice != nil {
		d.Advice = *w.Advice
	}
	return d
}
