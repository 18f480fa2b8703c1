package sop

// procedureStep is one numbered entry in the detailed procedure section.
type procedureStep struct {
	Name   string
	Action string
}

// steps13 is the fast-draft procedure.
var steps13 = []procedureStep{
	{"Intake & objective definition", "Confirm goal, constraints, and success criteria."},
	{"Inputs collection", "Gather required access, assets, data, and historical context."},
	{"Baseline check", "Validate current state performance and identify constraints."},
	{"Plan & sequencing", "Define the step order, dependencies, and timeline."},
	{"Execution step 1", "Run the first operational action with controls."},
	{"Execution step 2", "Run the second operational action with controls."},
	{"Quality check", "Validate against acceptance criteria; fix obvious defects."},
	{"Exception handling", "Define escalation triggers and response owners."},
	{"Documentation", "Record outputs, decisions, and rationale for auditability."},
	{"Handoff", "Transfer outputs to next role/team with clear acceptance criteria."},
	{"Measurement", "Capture KPIs, logs, and evidence of completion."},
	{"Review cadence", "Weekly or monthly review of results and issues."},
	{"Continuous improvement", "Submit change request and update SOP when needed."},
}

// steps26 is the enterprise procedure with governance and compliance layers.
var steps26 = []procedureStep{
	{"Initial audit & baseline", "Audit current state across systems, channels, or teams; identify discrepancies."},
	{"Define objectives & KPIs", "Set measurable targets, tolerances, and reporting definitions."},
	{"Stakeholder alignment", "Confirm owners, decision rights, and escalation pathway."},
	{"Access validation", "Verify permissions, integrations, and data availability."},
	{"Risk pre-assessment", "Identify operational, financial, and compliance risks."},
	{"Architecture overview", "Document systems, integrations, and data flows."},
	{"Control design", "Define controls, checklists, and acceptance criteria."},
	{"Step 1 — setup", "Configure required settings, templates, and guardrails."},
	{"Step 2 — data validation", "Validate inputs and data integrity before execution."},
	{"Step 3 — execution", "Execute the primary workflow action with logging."},
	{"Step 4 — secondary execution", "Execute downstream actions with dependency checks."},
	{"Step 5 — monitoring", "Monitor logs, errors, and early signals of variance."},
	{"Step 6 — QA gate", "Run QA checks against tolerances and standards."},
	{"Step 7 — exception workflow", "Handle exceptions; escalate if thresholds exceeded."},
	{"Step 8 — reconciliation", "Reconcile outputs with source-of-truth systems."},
	{"Step 9 — reporting", "Generate and distribute performance report."},
	{"Step 10 — financial impact", "Estimate cost drivers, savings opportunities, and payback."},
	{"Step 11 — compliance mapping", "Map relevant obligations (e.g., GDPR) and record controls."},
	{"Step 12 — audit trail", "Store evidence, approvals, and changes in repository."},
	{"Step 13 — SLA targets", "Define response times, accuracy targets, and penalties/escalations."},
	{"Step 14 — governance cadence", "Quarterly/bi-annual governance reviews and audits."},
	{"Step 15 — training plan", "Role-based training, refresh cycle, and competency checks."},
	{"Step 16 — change request", "Submit change request with impact assessment."},
	{"Step 17 — approval workflow", "Obtain approvals (Owner, IT, Compliance as needed)."},
	{"Step 18 — implementation", "Roll out change with communication plan."},
	{"Step 19 — post-implementation review", "Validate results against baseline; log learnings."},
	{"Step 20 — automation layer", "Identify AI/automation opportunities to reduce manual work."},
	{"Step 21 — maturity model", "Assess current maturity and target state."},
	{"Step 22 — business continuity", "Define RTO/RPO and fallback manual process."},
	{"Step 23 — supplier/partner dependencies", "Document dependencies and mitigations."},
	{"Step 24 — stakeholder engagement", "Engage leadership with review cadence and outcomes."},
	{"Step 25 — continuous improvement", "Backlog improvements; prioritise by impact."},
	{"Step 26 — appendices", "Cross references, templates, and related SOPs."},
}

// stepsFor returns the procedure table for the given depth.
func stepsFor(d Depth) []procedureStep {
	if d == Depth26 {
		return steps26
	}
	return steps13
}
