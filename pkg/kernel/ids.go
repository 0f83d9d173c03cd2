package kernel

type RecruiterID string

func NewRecruiterID(id string) RecruiterID { return RecruiterID(id) }
func (r RecruiterID) String() string       { return string(r) }
func (r RecruiterID) IsEmpty() bool        { return string(r) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type StudentID string

func NewStudentID(id string) StudentID { return StudentID(id) }
func (s StudentID) String() string     { return string(s) }
func (s StudentID) IsEmpty() bool      { return string(s) == "" }

// RunID identifies one matching pipeline run
type RunID string

func NewRunID(id string) RunID { return RunID(id) }
func (r RunID) String() string { return string(r) }
func (r RunID) IsEmpty() bool  { return string(r) == "" }

// ParseJobID is the opaque identifier assigned by the external parsing service
type ParseJobID string

func NewParseJobID(id string) ParseJobID { return ParseJobID(id) }
func (p ParseJobID) String() string      { return string(p) }
func (p ParseJobID) IsEmpty() bool       { return string(p) == "" }
