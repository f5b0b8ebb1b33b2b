package database

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

type Category string

const (
	CategoryArrays             Category = "ARRAYS"
	CategoryStrings            Category = "STRINGS"
	CategoryLinkedList         Category = "LINKED_LIST"
	CategoryStack              Category = "STACK"
	CategoryQueue              Category = "QUEUE"
	CategoryTree               Category = "TREE"
	CategoryGraph              Category = "GRAPH"
	CategoryDynamicProgramming Category = "DYNAMIC_PROGRAMMING"
	CategoryGreedy             Category = "GREEDY"
	CategoryBacktracking       Category = "BACKTRACKING"
	CategorySorting            Category = "SORTING"
	CategorySearching          Category = "SEARCHING"
)

type Language string

const (
	LanguageJava       Language = "JAVA"
	LanguagePython     Language = "PYTHON"
	LanguageCpp        Language = "CPP"
	LanguageJavascript Language = "JAVASCRIPT"
)

type SubmissionStatus string

const (
	SubmissionStatusPending             SubmissionStatus = "PENDING"
	SubmissionStatusRunning             SubmissionStatus = "RUNNING"
	SubmissionStatusAccepted            SubmissionStatus = "ACCEPTED"
	SubmissionStatusWrongAnswer         SubmissionStatus = "WRONG_ANSWER"
	SubmissionStatusTimeLimitExceeded   SubmissionStatus = "TIME_LIMIT_EXCEEDED"
	SubmissionStatusMemoryLimitExceeded SubmissionStatus = "MEMORY_LIMIT_EXCEEDED"
	SubmissionStatusRuntimeError        SubmissionStatus = "RUNTIME_ERROR"
	SubmissionStatusCompilationError    SubmissionStatus = "COMPILATION_ERROR"
)

type ProgressType string

const (
	ProgressTypeOverall    ProgressType = "OVERALL"
	ProgressTypeCategory   ProgressType = "CATEGORY"
	ProgressTypeDifficulty ProgressType = "DIFFICULTY"
)

type Problem struct {
	ID               int64
	Title            string
	Description      string
	ProblemStatement string
	Constraints      string
	Examples         string
	ExpectedOutput   string
	Difficulty       Difficulty
	Category         Category
	Tags             []string
	TimeLimitSeconds int32
	MemoryLimitMB    int32
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TestCase struct {
	ID             int64
	ProblemID      int64
	Input          string
	ExpectedOutput string
	IsSample       bool
	IsHidden       bool
	CreatedAt      time.Time
}

type ProblemSubmission struct {
	ID              int64
	UserID          int64
	ProblemID       int64
	Code            string
	Language        Language
	Status          SubmissionStatus
	ExecutionTimeMs *int64
	MemoryUsedMB    *float64
	TestCasesPassed int32
	TotalTestCases  int32
	ErrorMessage    *string
	SubmittedAt     time.Time
}

type Progress struct {
	ID                 int64
	UserID             int64
	Type               ProgressType
	Category           *string
	Difficulty         *string
	ProblemsSolved     int32
	TotalProblems      int32
	AccuracyPercentage float64
	AverageTimeMs      int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}
