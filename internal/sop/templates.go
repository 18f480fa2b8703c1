package sop

// docTemplate is the text/template for the full SOP body. Section
// numbering is fixed; the procedure table and the governance section
// vary with the selected depth.
const docTemplate = `0.0 EXECUTIVE SUMMARY
This SOP establishes a repeatable operating method for "{{.Title}}" within {{.Company}}. It converts intent into controlled execution, reduces delivery variance, and improves outcomes through defined roles, controls, and measurable outputs. The process is designed to be deployable across {{.Region}}.
Strategic Value: {{.StrategicValue}}
Input Signal: {{.Brief}}

1.0 PURPOSE & SCOPE
Purpose: Provide a consistent, auditable method to execute {{.Theme}}.
Scope: Applies to all relevant teams and workflows associated with {{.Theme}}. Exclusions: activities outside approved platforms and tools.

2.0 STRATEGIC CONTEXT & BUSINESS CASE
Market Context: Increasing competition rewards operational speed with quality control.
Business Problem: Inconsistent execution creates rework, missed targets, and performance volatility.
Strategic Imperative: Standardised delivery improves profitability, predictability, and stakeholder confidence.

3.0 ROLES & RESPONSIBILITIES
Owner: {{.FirstName}} {{.LastName}} (Process Owner)
Accountable: Department Lead (Category: {{.Category}})
Responsible: Delivery Team Members executing steps
Consulted: IT / Data / Compliance (as applicable)
Informed: Leadership stakeholders via reporting cadence

4.0 PREREQUISITES
Tools & Systems: Core work tools for {{.Category}}, documentation repository, analytics / tracking where relevant.
Skills & Access: Role-based access to required systems and competency to execute steps reliably.

5.0 TECHNOLOGY ARCHITECTURE & SYSTEMS
Primary Systems: Systems used to execute {{.Theme}}.
Integration Points: Data flows and handoffs between tools (APIs / exports / dashboards).
Security Protocols: Least-privilege access, audit logs where available, and documented approvals for change.

6.0 DETAILED PROCEDURE
{{range $i, $s := .Steps}}{{stepnum $i}}. {{$s.Name}}
   - Action: {{$s.Action}}
   - Control: Document evidence and confirm acceptance criteria.
   - Outcome: Clear deliverable produced for next step.

{{end}}{{if .Enterprise}}8.0 QUALITY ASSURANCE & GOVERNANCE
- Audit cadence: Quarterly process audit; bi-annual compliance review.
- Tolerances: KPI deviation thresholds defined by the Process Owner.
- Escalation: L1 Team Lead (2h), L2 Manager (4h), L3 Director (12h).

9.0 POLICY & COMPLIANCE REFERENCE MATRIX
Applicable: GDPR (data protection), relevant ISO-aligned quality practices, internal change control.
Obligations: Maintain accurate records, keep approvals, and retain evidence.

10.0 RISK & CONTROL MATRIX
Risk: Execution variance (High) → Mitigation: QA gates + reporting.
Risk: Data integrity issues (High) → Mitigation: validation + reconciliation.
Risk: Knowledge dependency (Medium) → Mitigation: training + SOP standardisation.

11.0 FINANCIAL IMPACT ANALYSIS
Cost drivers: time, rework, operational variance.
Savings opportunity: reduced cycle time and fewer defects.
Payback: faster onboarding and more consistent delivery.

12.0 CHANGE MANAGEMENT
Changes require a formal request, impact assessment, approval, and documented rollout.
{{else}}8.0 QUALITY ASSURANCE & CONTROLS
- Acceptance criteria defined at intake.
- QA gate before handoff.
- Exceptions escalated to the Process Owner.

9.0 CHANGE CONTROL
Update this SOP via a documented change request and brief compiler review.
{{end}}
Document Metadata
Generated: {{.Date}} · Document ID: {{.ID}}`
