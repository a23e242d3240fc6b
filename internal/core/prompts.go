package core

import (
	"fmt"
)

// SummaryPromptTemplate condenses a PRD. The 5000-character ceiling is
// an instruction to the model; the pipeline does not truncate or fail
// if the model overruns it.
const SummaryPromptTemplate = `You are an expert in summarizing Product Requirements Documents (PRDs). Your task is to generate a concise, structured, and comprehensive summary of the provided PRD text. The summary should be well-organized, easy to understand, and formatted for readability. Ensure it captures key points, objectives, features, and requirements within a 5000-character limit.

**Summary Format:**
- **Overview:** Briefly describe the product, its purpose, and target users.
- **Key Features:** List core functionalities as bullet points.
- **Core UI Components:** Highlight essential UI elements.
- **System Architecture:** Outline key technologies, databases, and frameworks used.
- **Future Enhancements:** Mention planned upgrades.

**Guidelines:**
1. Focus on the main purpose and goals of the product.
2. Highlight key features and functionalities concisely.
3. Mention critical technical or business requirements.
4. Include constraints, assumptions, or dependencies if relevant.
5. Avoid unnecessary details, examples, or repetitions.
6. Ensure logical flow and structured formatting.

**PRD Text to Summarize:**
%s`

// FlowPromptTemplate extracts the user flow from a summary.
const FlowPromptTemplate = `You are an AI expert in product analysis and user experience design. Given a summarized Product Requirement Document (PRD), your task is to extract and map the complete user flow. Identify key steps, decision points, and interactions a user takes while engaging with the product. Structure the user flow in a clear, step-by-step manner, including entry points, actions, transitions, and outcomes. If applicable, highlight alternative paths, edge cases, and dependencies. Present the result in an easy-to-understand format, such as a flowchart-style list or structured diagram description.

Summarized PRD for User Flow Extraction:
%s`

// MermaidPromptTemplate turns a user flow into Mermaid code.
const MermaidPromptTemplate = `You are an AI expert in workflow visualization and Mermaid.js. Your task is to generate valid and error-free Mermaid.js code based on the given user flow from a Product Requirement Document (PRD). The output must not contain any syntax errors or comments.

Ensure the following:
- Use correct Mermaid flowchart syntax (graph TD or graph LR).
- Validate all syntax to prevent errors.
- Represent decision points with ? and conditional branches (yes/no).
- Use subgraphs if the flow contains modular steps.
- Accurately capture loops, conditions, and alternate paths.
- No comments should be included in the output.
- Return only the Mermaid.js code inside a ` + "```mermaid" + ` fenced block, without any additional explanation.

User Flow to Convert:
%s`

// WireframePromptTemplate asks for the structured screens/components
// JSON the wireframe renderer consumes.
const WireframePromptTemplate = `You are an AI expert in UI/UX design. Given a Product Requirement Document (PRD), infer the screens a user would encounter and the UI components each screen needs.

Return a single JSON object with this shape:
- "screens": array of screens, each with "name" (string) and "components" (array).
- Each component has a "type" (one of TextField, Button, ButtonGroup, Link, Text, Switch, Dropdown, ImageView, VideoView, Avatar, Progress, Slider, Tabs, Table, Card, Notification) plus attributes such as "label", "placeholder", "secure", "options", "style", "action".
- "edges": optional array of {"from": <screen index>, "to": <screen index>} describing navigation between screens. Indices refer to positions in "screens".
- "alternative_paths": optional array of {"name": <string>, "flow": <description>} for side flows and edge cases.

Rules:
- Output ONLY the JSON object inside a ` + "```json" + ` fenced block.
- Use double-quoted keys and strings, no trailing commas, no comments.
- Every "from" and "to" must be a valid index into "screens".

PRD Text:
%s`

// RepairPromptTemplate asks the backend to fix invalid JSON. Used for
// exactly one repair round per payload.
const RepairPromptTemplate = `The following text was supposed to be valid JSON but fails to parse. Fix it.

Rules:
- Use double quotes for all keys and string values.
- Remove trailing commas.
- Escape special characters inside strings properly.
- Balance all brackets and braces.
- Do not add, drop, or rename any fields; preserve the data exactly.
- Return ONLY the corrected JSON inside a ` + "```json" + ` fenced block, with no commentary.

Invalid JSON:
%s`

// BuildSummaryPrompt renders the summarization prompt.
func BuildSummaryPrompt(prdText string) string {
	return fmt.Sprintf(SummaryPromptTemplate, prdText)
}

// BuildFlowPrompt renders the user-flow extraction prompt.
func BuildFlowPrompt(summary string) string {
	return fmt.Sprintf(FlowPromptTemplate, summary)
}

// BuildMermaidPrompt renders the diagram generation prompt.
func BuildMermaidPrompt(flow string) string {
	return fmt.Sprintf(MermaidPromptTemplate, flow)
}

// BuildWireframePrompt renders the wireframe generation prompt.
func BuildWireframePrompt(text string) string {
	return fmt.Sprintf(WireframePromptTemplate, text)
}

// BuildRepairPrompt renders the JSON correction prompt.
func BuildRepairPrompt(payload string) string {
	return fmt.Sprintf(RepairPromptTemplate, payload)
}
