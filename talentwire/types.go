package talentwire

import (
	"encoding/base64"
	"time"
)

// ResponseInfo is the status block carried by every endpoint: success code,
// human message, transaction id, timing and (for account-scoped calls)
// account/credit metadata.
type ResponseInfo struct {
	Code                     string           `json:"Code"`
	Message                  string           `json:"Message"`
	TransactionID            string           `json:"TransactionId"`
	EngineVersion            string           `json:"EngineVersion,omitempty"`
	APIVersion               string           `json:"ApiVersion,omitempty"`
	TotalElapsedMilliseconds int64            `json:"TotalElapsedMilliseconds"`
	CustomerDetails          *CustomerDetails `json:"CustomerDetails,omitempty"`
}

// Info codes the server reports for calls that produced usable output.
// Parsing may succeed with warnings; treating those as hard failures would
// discard a usable document.
const (
	codeSuccess       = "Success"
	codeParseWarnings = "WarningsFoundDuringParsing"
)

// IsSuccess reports whether the payload is usable.
func (i ResponseInfo) IsSuccess() bool {
	return i.Code == codeSuccess || i.Code == codeParseWarnings
}

// CustomerDetails carries account and credit metadata on account-scoped calls.
type CustomerDetails struct {
	AccountID                 string  `json:"AccountId"`
	Name                      string  `json:"Name"`
	Region                    string  `json:"Region"`
	CreditsRemaining          float64 `json:"CreditsRemaining"`
	CreditsUsed               float64 `json:"CreditsUsed"`
	ExpirationDate            string  `json:"ExpirationDate"`
	MaximumConcurrentRequests int     `json:"MaximumConcurrentRequests"`
}

// SubOperationStatus reports the outcome of a stage embedded in an
// otherwise-successful call (geocoding or indexing during parsing).
type SubOperationStatus struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// IsSuccess reports whether the embedded stage completed.
func (s SubOperationStatus) IsSuccess() bool { return s.Code == codeSuccess }

// ActionResponse is returned by operations whose payload is only the info
// block (index creation, deletions, tag updates).
type ActionResponse = Response[struct{}]

// Document is the wire form of a file handed to the parser: its bytes,
// base64-encoded, plus an optional last-modified date the parser uses to
// resolve relative dates ("current position since 2019").
type Document struct {
	DocumentAsBase64String string `json:"DocumentAsBase64String"`
	DocumentLastModified   string `json:"DocumentLastModified,omitempty"`
}

// NewDocument builds the wire form of a document from raw file bytes.
// Converting richer file representations into bytes is the caller's job.
func NewDocument(data []byte, lastModified time.Time) Document {
	doc := Document{DocumentAsBase64String: base64.StdEncoding.EncodeToString(data)}
	if !lastModified.IsZero() {
		doc.DocumentLastModified = lastModified.Format("2006-01-02")
	}
	return doc
}

// ParseRequest carries a document to parser/resume or parser/joborder,
// optionally with geocoding and indexing to run in the same round trip.
type ParseRequest struct {
	Document
	GeocodeOptions  *GeocodeOptions  `json:"GeocodeOptions,omitempty"`
	IndexingOptions *IndexingOptions `json:"IndexingOptions,omitempty"`
}

// GeocodeOptions controls the geocoding stage of a parse call.
type GeocodeOptions struct {
	IncludeGeocoding bool            `json:"IncludeGeocoding"`
	Provider         GeocodeProvider `json:"Provider,omitempty"`
	ProviderKey      string          `json:"ProviderKey,omitempty"`
	PostalAddress    *PostalAddress  `json:"PostalAddress,omitempty"`
}

// GeocodeProvider selects the upstream geocoding service.
type GeocodeProvider string

const (
	GeocodeProviderGoogle GeocodeProvider = "Google"
	GeocodeProviderBing   GeocodeProvider = "Bing"
	GeocodeProviderNone   GeocodeProvider = "None"
)

// IndexingOptions controls the indexing stage of a parse or geocode call.
type IndexingOptions struct {
	IndexID         string   `json:"IndexId"`
	DocumentID      string   `json:"DocumentId"`
	UserDefinedTags []string `json:"UserDefinedTags,omitempty"`
}

// ParseResumeValue is the payload of a resume parse. GeocodeResponse and
// IndexingResponse are present only when those stages were requested, and
// report their own pass/fail independently of the outer call.
type ParseResumeValue struct {
	ResumeData       *ParsedResume       `json:"ResumeData,omitempty"`
	ParsingMetadata  *ParsingMetadata    `json:"ParsingMetadata,omitempty"`
	GeocodeResponse  *SubOperationStatus `json:"GeocodeResponse,omitempty"`
	IndexingResponse *SubOperationStatus `json:"IndexingResponse,omitempty"`
}

// ParseResumeResponse is the full envelope of a resume parse.
type ParseResumeResponse = Response[ParseResumeValue]

// ParseJobValue is the payload of a job order parse.
type ParseJobValue struct {
	JobData          *ParsedJob          `json:"JobData,omitempty"`
	ParsingMetadata  *ParsingMetadata    `json:"ParsingMetadata,omitempty"`
	GeocodeResponse  *SubOperationStatus `json:"GeocodeResponse,omitempty"`
	IndexingResponse *SubOperationStatus `json:"IndexingResponse,omitempty"`
}

// ParseJobResponse is the full envelope of a job order parse.
type ParseJobResponse = Response[ParseJobValue]

// ParsingMetadata describes how the parse went.
type ParsingMetadata struct {
	ElapsedMilliseconds int64  `json:"ElapsedMilliseconds"`
	TimedOut            bool   `json:"TimedOut"`
	DocumentCulture     string `json:"DocumentCulture,omitempty"`
}

// ParsedResume is the structured form of a resume. The remote parser emits
// far more fields; this model keeps the ones the SDK surfaces.
type ParsedResume struct {
	ContactInformation  *ContactInformation `json:"ContactInformation,omitempty"`
	ProfessionalSummary string              `json:"ProfessionalSummary,omitempty"`
	EmploymentHistory   []Position          `json:"EmploymentHistory,omitempty"`
	EducationHistory    []EducationDetail   `json:"EducationHistory,omitempty"`
	Skills              []Skill             `json:"Skills,omitempty"`
	Location            *Location           `json:"Location,omitempty"`
}

// ParsedJob is the structured form of a job order.
type ParsedJob struct {
	JobTitle       string    `json:"JobTitle,omitempty"`
	EmployerName   string    `json:"EmployerName,omitempty"`
	JobDescription string    `json:"JobDescription,omitempty"`
	Skills         []Skill   `json:"Skills,omitempty"`
	Location       *Location `json:"Location,omitempty"`
}

// ContactInformation groups the candidate identity fields.
type ContactInformation struct {
	CandidateName  *CandidateName `json:"CandidateName,omitempty"`
	EmailAddresses []string       `json:"EmailAddresses,omitempty"`
	Telephones     []string       `json:"Telephones,omitempty"`
	Location       *Location      `json:"Location,omitempty"`
}

// CandidateName is the parsed candidate name.
type CandidateName struct {
	FormattedName string `json:"FormattedName,omitempty"`
	GivenName     string `json:"GivenName,omitempty"`
	FamilyName    string `json:"FamilyName,omitempty"`
}

// Position is one entry of the employment history.
type Position struct {
	Employer    string `json:"Employer,omitempty"`
	Title       string `json:"Title,omitempty"`
	StartDate   string `json:"StartDate,omitempty"`
	EndDate     string `json:"EndDate,omitempty"`
	IsCurrent   bool   `json:"IsCurrent,omitempty"`
	Description string `json:"Description,omitempty"`
}

// EducationDetail is one entry of the education history.
type EducationDetail struct {
	SchoolName string `json:"SchoolName,omitempty"`
	Degree     string `json:"Degree,omitempty"`
	Majors     string `json:"Majors,omitempty"`
	EndDate    string `json:"EndDate,omitempty"`
}

// Skill is a normalized skill with usage metadata.
type Skill struct {
	Name             string `json:"Name"`
	MonthsExperience int    `json:"MonthsExperience,omitempty"`
	LastUsed         string `json:"LastUsed,omitempty"`
}

// Location is a parsed or geocoded location.
type Location struct {
	PostalAddress  *PostalAddress  `json:"PostalAddress,omitempty"`
	GeoCoordinates *GeoCoordinates `json:"GeoCoordinates,omitempty"`
}

// PostalAddress is a structured mailing address.
type PostalAddress struct {
	CountryCode  string `json:"CountryCode,omitempty"`
	Region       string `json:"Region,omitempty"`
	Municipality string `json:"Municipality,omitempty"`
	PostalCode   string `json:"PostalCode,omitempty"`
	AddressLine  string `json:"AddressLine,omitempty"`
}

// GeoCoordinates is a geocoded point and its source provider.
type GeoCoordinates struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
	Source    string  `json:"Source,omitempty"`
}

// IndexType says which kind of documents an index stores.
type IndexType string

const (
	IndexTypeResume IndexType = "Resume"
	IndexTypeJob    IndexType = "Job"
)

// Index describes one index on the account.
type Index struct {
	Name          string    `json:"Name"`
	IndexType     IndexType `json:"IndexType"`
	DocumentCount int       `json:"DocumentCount"`
}

// ListIndexesResponse is the envelope of an index listing.
type ListIndexesResponse = Response[[]Index]

// IndexResumeRequest adds a parsed resume to an index.
type IndexResumeRequest struct {
	ResumeData      *ParsedResume `json:"ResumeData"`
	UserDefinedTags []string      `json:"UserDefinedTags,omitempty"`
}

// IndexJobRequest adds a parsed job to an index.
type IndexJobRequest struct {
	JobData         *ParsedJob `json:"JobData"`
	UserDefinedTags []string   `json:"UserDefinedTags,omitempty"`
}

// DocumentTagsUpdate replaces the user-defined tags on one indexed document.
type DocumentTagsUpdate struct {
	DocumentID      string   `json:"DocumentId"`
	UserDefinedTags []string `json:"UserDefinedTags"`
}

// FilterCriteria narrows match and search operations.
type FilterCriteria struct {
	SearchExpression string            `json:"SearchExpression,omitempty"`
	UserDefinedTags  []string          `json:"UserDefinedTags,omitempty"`
	DocumentIDs      []string          `json:"DocumentIds,omitempty"`
	LocationCriteria *LocationCriteria `json:"LocationCriteria,omitempty"`
}

// LocationCriteria restricts results to a distance around given locations.
type LocationCriteria struct {
	Locations    []PostalAddress `json:"Locations,omitempty"`
	Distance     int             `json:"Distance,omitempty"`
	DistanceUnit string          `json:"DistanceUnit,omitempty"`
}

// CategoryWeights tunes (or reports) the relative importance of each scoring
// category.
type CategoryWeights struct {
	Education      float64 `json:"Education,omitempty"`
	JobTitles      float64 `json:"JobTitles,omitempty"`
	Skills         float64 `json:"Skills,omitempty"`
	Industries     float64 `json:"Industries,omitempty"`
	Languages      float64 `json:"Languages,omitempty"`
	Certifications float64 `json:"Certifications,omitempty"`
}

// MatchResumeRequest matches a parsed resume against one or more indexes.
type MatchResumeRequest struct {
	ResumeData               *ParsedResume    `json:"ResumeData"`
	IndexIDsToSearchInto     []string         `json:"IndexIdsToSearchInto"`
	Take                     int              `json:"Take,omitempty"`
	PreferredCategoryWeights *CategoryWeights `json:"PreferredCategoryWeights,omitempty"`
	FilterCriteria           *FilterCriteria  `json:"FilterCriteria,omitempty"`
}

// MatchJobRequest matches a parsed job against one or more indexes.
type MatchJobRequest struct {
	JobData                  *ParsedJob       `json:"JobData"`
	IndexIDsToSearchInto     []string         `json:"IndexIdsToSearchInto"`
	Take                     int              `json:"Take,omitempty"`
	PreferredCategoryWeights *CategoryWeights `json:"PreferredCategoryWeights,omitempty"`
	FilterCriteria           *FilterCriteria  `json:"FilterCriteria,omitempty"`
}

// MatchIndexedDocumentRequest matches a document already stored in an index
// against one or more indexes; the source document is addressed in the path.
type MatchIndexedDocumentRequest struct {
	IndexIDsToSearchInto     []string         `json:"IndexIdsToSearchInto"`
	Take                     int              `json:"Take,omitempty"`
	PreferredCategoryWeights *CategoryWeights `json:"PreferredCategoryWeights,omitempty"`
	FilterCriteria           *FilterCriteria  `json:"FilterCriteria,omitempty"`
}

// MatchResult is one scored hit.
type MatchResult struct {
	ID              string           `json:"Id"`
	IndexID         string           `json:"IndexId"`
	Score           float64          `json:"Score"`
	WeightedScore   float64          `json:"WeightedScore"`
	CategoryScores  *CategoryWeights `json:"CategoryScores,omitempty"`
	UserDefinedTags []string         `json:"UserDefinedTags,omitempty"`
}

// MatchValue is the payload of a match operation.
type MatchValue struct {
	Matches      []MatchResult `json:"Matches"`
	CurrentCount int           `json:"CurrentCount"`
	TotalCount   int           `json:"TotalCount"`
}

// MatchResponse is the full envelope of a match operation.
type MatchResponse = Response[MatchValue]

// SearchRequest runs a filtered search over one or more indexes.
type SearchRequest struct {
	IndexIDsToSearchInto []string        `json:"IndexIdsToSearchInto"`
	FilterCriteria       *FilterCriteria `json:"FilterCriteria,omitempty"`
	Take                 int             `json:"Take,omitempty"`
	Skip                 int             `json:"Skip,omitempty"`
}

// SearchResult is one unscored search hit.
type SearchResult struct {
	ID              string   `json:"Id"`
	IndexID         string   `json:"IndexId"`
	UserDefinedTags []string `json:"UserDefinedTags,omitempty"`
}

// SearchValue is the payload of a search.
type SearchValue struct {
	Results      []SearchResult `json:"Results"`
	CurrentCount int            `json:"CurrentCount"`
	TotalCount   int            `json:"TotalCount"`
}

// SearchResponse is the full envelope of a search.
type SearchResponse = Response[SearchValue]

// ParsedResumeWithID pairs a parsed resume with the caller's identifier.
type ParsedResumeWithID struct {
	ID         string        `json:"Id"`
	ResumeData *ParsedResume `json:"ResumeData"`
}

// ParsedJobWithID pairs a parsed job with the caller's identifier.
type ParsedJobWithID struct {
	ID      string     `json:"Id"`
	JobData *ParsedJob `json:"JobData"`
}

// BimetricScoreResumesRequest scores a source document against resume
// targets. Exactly one of SourceResume or SourceJob must be set; the target
// kind is fixed by the request type, decided at the call site.
type BimetricScoreResumesRequest struct {
	SourceResume             *ParsedResumeWithID  `json:"SourceResume,omitempty"`
	SourceJob                *ParsedJobWithID     `json:"SourceJob,omitempty"`
	TargetResumes            []ParsedResumeWithID `json:"TargetResumes"`
	PreferredCategoryWeights *CategoryWeights     `json:"PreferredCategoryWeights,omitempty"`
}

// BimetricScoreJobsRequest scores a source document against job targets.
// Exactly one of SourceResume or SourceJob must be set.
type BimetricScoreJobsRequest struct {
	SourceResume             *ParsedResumeWithID `json:"SourceResume,omitempty"`
	SourceJob                *ParsedJobWithID    `json:"SourceJob,omitempty"`
	TargetJobs               []ParsedJobWithID   `json:"TargetJobs"`
	PreferredCategoryWeights *CategoryWeights    `json:"PreferredCategoryWeights,omitempty"`
}

// BimetricScoreResult is the two-directional score for one target.
type BimetricScoreResult struct {
	ID             string           `json:"Id"`
	Score          float64          `json:"Score"`
	ReverseScore   float64          `json:"ReverseScore"`
	WeightedScore  float64          `json:"WeightedScore"`
	CategoryScores *CategoryWeights `json:"CategoryScores,omitempty"`
}

// BimetricScoreValue is the payload of a bimetric score call.
type BimetricScoreValue struct {
	Matches []BimetricScoreResult `json:"Matches"`
}

// BimetricScoreResponse is the full envelope of a bimetric score call.
type BimetricScoreResponse = Response[BimetricScoreValue]

// GeocodeResumeRequest geocodes the address of an already-parsed resume.
// PostalAddress, when set, overrides the address found in the document.
type GeocodeResumeRequest struct {
	ResumeData    *ParsedResume   `json:"ResumeData"`
	Provider      GeocodeProvider `json:"Provider,omitempty"`
	ProviderKey   string          `json:"ProviderKey,omitempty"`
	PostalAddress *PostalAddress  `json:"PostalAddress,omitempty"`
}

// GeocodeJobRequest geocodes the address of an already-parsed job.
type GeocodeJobRequest struct {
	JobData       *ParsedJob      `json:"JobData"`
	Provider      GeocodeProvider `json:"Provider,omitempty"`
	ProviderKey   string          `json:"ProviderKey,omitempty"`
	PostalAddress *PostalAddress  `json:"PostalAddress,omitempty"`
}

// GeocodeResumeValue carries the resume with coordinates filled in.
type GeocodeResumeValue struct {
	ResumeData *ParsedResume `json:"ResumeData"`
}

// GeocodeResumeResponse is the full envelope of a resume geocode.
type GeocodeResumeResponse = Response[GeocodeResumeValue]

// GeocodeJobValue carries the job with coordinates filled in.
type GeocodeJobValue struct {
	JobData *ParsedJob `json:"JobData"`
}

// GeocodeJobResponse is the full envelope of a job geocode.
type GeocodeJobResponse = Response[GeocodeJobValue]

// GeocodeAndIndexResumeRequest geocodes a parsed resume and stores it into
// the index addressed in the path, in one round trip.
type GeocodeAndIndexResumeRequest struct {
	ResumeData      *ParsedResume   `json:"ResumeData"`
	Provider        GeocodeProvider `json:"Provider,omitempty"`
	ProviderKey     string          `json:"ProviderKey,omitempty"`
	PostalAddress   *PostalAddress  `json:"PostalAddress,omitempty"`
	UserDefinedTags []string        `json:"UserDefinedTags,omitempty"`
}

// GeocodeAndIndexJobRequest geocodes a parsed job and stores it into the
// index addressed in the path.
type GeocodeAndIndexJobRequest struct {
	JobData         *ParsedJob      `json:"JobData"`
	Provider        GeocodeProvider `json:"Provider,omitempty"`
	ProviderKey     string          `json:"ProviderKey,omitempty"`
	PostalAddress   *PostalAddress  `json:"PostalAddress,omitempty"`
	UserDefinedTags []string        `json:"UserDefinedTags,omitempty"`
}

// GeocodeAndIndexResumeValue reports the geocoded resume plus the outcome of
// the embedded indexing stage.
type GeocodeAndIndexResumeValue struct {
	ResumeData       *ParsedResume       `json:"ResumeData,omitempty"`
	IndexingResponse *SubOperationStatus `json:"IndexingResponse,omitempty"`
}

// GeocodeAndIndexResumeResponse is the full envelope.
type GeocodeAndIndexResumeResponse = Response[GeocodeAndIndexResumeValue]

// GeocodeAndIndexJobValue reports the geocoded job plus the outcome of the
// embedded indexing stage.
type GeocodeAndIndexJobValue struct {
	JobData          *ParsedJob          `json:"JobData,omitempty"`
	IndexingResponse *SubOperationStatus `json:"IndexingResponse,omitempty"`
}

// GeocodeAndIndexJobResponse is the full envelope.
type GeocodeAndIndexJobResponse = Response[GeocodeAndIndexJobValue]

// UIOptions customizes a generated matching UI session.
type UIOptions struct {
	Username string   `json:"Username,omitempty"`
	Style    *UIStyle `json:"Style,omitempty"`
}

// UIStyle brands the generated session.
type UIStyle struct {
	PrimaryColor   string `json:"PrimaryColor,omitempty"`
	HeaderImageURL string `json:"HeaderImageUrl,omitempty"`
}

// UISessionValue is the payload of a UI-session variant: a URL the end user
// opens to run the operation interactively.
type UISessionValue struct {
	URL       string `json:"URL"`
	SessionID string `json:"SessionId"`
}

// UISessionResponse is the full envelope of a UI-session call.
type UISessionResponse = Response[UISessionValue]
