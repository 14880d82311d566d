package core

// DocumentType identifies the declared format of an input document.
// Dispatch in the extraction pipeline is driven by this type, not by
// sniffing the content.
type DocumentType int

const (
	// DocumentTypeUnknown is the zero value for unrecognized formats.
	DocumentTypeUnknown DocumentType = iota
	// DocumentTypePlainText is a UTF-8 text file.
	DocumentTypePlainText
	// DocumentTypeCSV is a comma-delimited table.
	DocumentTypeCSV
	// DocumentTypeXLSX is a spreadsheet workbook.
	DocumentTypeXLSX
	// DocumentTypeJSON is structured JSON markup.
	DocumentTypeJSON
	// DocumentTypeYAML is structured YAML markup.
	DocumentTypeYAML
	// DocumentTypeDocx is a Word-processor document.
	DocumentTypeDocx
	// DocumentTypeODT is an OpenDocument text document.
	DocumentTypeODT
	// DocumentTypePDF is a page-oriented PDF document.
	DocumentTypePDF
	// DocumentTypeArchive is a zip archive containing other documents.
	DocumentTypeArchive
)

// Document is a raw input file: bytes plus a declared type and the
// originating file name. Documents are transient; they are consumed by
// text extraction and never stored.
type Document struct {
	Name string
	Type DocumentType
	Data []byte
}

// ExtractedText is the normalized text produced from one Document.
// Content has every whitespace run collapsed to a single space and is
// trimmed. Immutable once produced.
type ExtractedText struct {
	Source    string // originating document name
	Content   string
	WordCount int
	CharCount int
}

// StorageMode selects how a project's corpus is persisted.
type StorageMode int

const (
	// StorageModeKnowledge keeps the corpus as a single inline text blob.
	// Chosen iff exactly one document was extracted and the total word
	// count is at or below the configured threshold.
	StorageModeKnowledge StorageMode = iota + 1
	// StorageModeVector chunks and embeds the corpus into a persisted
	// similarity-searchable index.
	StorageModeVector
)

// Chunk is a bounded-length substring of a source document, tagged with
// provenance and sequence position. Chunks are the retrieval unit.
type Chunk struct {
	Source  string
	Seq     int
	Content string
}

// IndexedChunk is a chunk paired with its embedding vector, as persisted
// in a project's vector index.
type IndexedChunk struct {
	Id      ID
	Source  string
	Seq     int
	Content string
	Vector  []float32
}

// RetrievalResult is one similarity-search hit. Score is a distance
// metric: lower means more similar.
type RetrievalResult struct {
	Source  string
	Content string
	Score   float32
}

// Tier identifies which branch of the response state machine produced a
// conversation turn. Tiers are evaluated in strict priority order; the
// first matching tier wins.
type Tier int

const (
	// TierBlocked means moderation flagged the input; a fixed refusal is
	// returned and no generation call is made.
	TierBlocked Tier = iota + 1
	// TierKnowledge means the reply was grounded in the project's inline
	// knowledge blob.
	TierKnowledge
	// TierUngrounded means retrieval produced nothing usable and the
	// reply was generated from the query alone.
	TierUngrounded
	// TierGrounded means the reply was generated with retrieved document
	// context.
	TierGrounded
)

// String returns a stable tag for the tier, used in transcripts and logs.
func (t Tier) String() string {
	switch t {
	case TierBlocked:
		return "blocked"
	case TierKnowledge:
		return "knowledge"
	case TierUngrounded:
		return "ungrounded"
	case TierGrounded:
		return "grounded"
	default:
		return "unknown"
	}
}

// Turn is one completed conversation exchange. Documents holds the unique
// source names backing the reply, in first-seen order; empty for every
// tier except a non-downgraded grounded reply.
type Turn struct {
	Tier      Tier
	Response  string
	Context   string
	Documents []string
}

// CandidateProfile is the structured record extracted from one CV.
// Field names match the JSON contract expected from the extraction model.
type CandidateProfile struct {
	Name            string `json:"Name"`
	Age             string `json:"Age"`
	Location        string `json:"Location"`
	Seniority       string `json:"Seniority"`
	Phone           string `json:"Phone"`
	Email           string `json:"Email"`
	LinkedIn        string `json:"LinkedIn"`
	Git             string `json:"Git"`
	CurrentRole     string `json:"CurrentRole"`
	Company         string `json:"Company"`
	EducationLevel  string `json:"EducationLevel"`
	School          string `json:"School"`
	YearsExperience int    `json:"YearsExperience"`
	Skills          string `json:"Skills"`
	SpeaksEnglish   string `json:"SpeaksEnglish"`
	IsDisabled      string `json:"IsDisabled"`
	EstimatedSalary int    `json:"EstimatedSalary"`
	CandidateScore  int    `json:"CandidateScore"`
	SkillsSummary   string `json:"SkillsSummary"`
	ScoreRationale  string `json:"ScoreRationale"`
}

// ScreeningOutcome tags how a screening result was obtained, so callers
// branch on an explicit tag instead of re-parsing errors.
type ScreeningOutcome int

const (
	// OutcomeParsed means the model reply parsed on the first attempt.
	OutcomeParsed ScreeningOutcome = iota + 1
	// OutcomeRecovered means the reply only parsed after extracting the
	// first brace-delimited span.
	OutcomeRecovered
	// OutcomeFailed means both parse attempts failed; Err and Raw carry
	// the failure description and the original reply.
	OutcomeFailed
)

// ScreeningResult is the outcome of processing one leaf document in the
// batch extraction pool. Exactly one result exists per submitted leaf
// document, regardless of individual failures.
type ScreeningResult struct {
	Source  string
	Outcome ScreeningOutcome
	Profile *CandidateProfile
	Err     string
	Raw     string
}
