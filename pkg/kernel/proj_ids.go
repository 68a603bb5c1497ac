package kernel

type VacationID string

func NewVacationID(id string) VacationID { return VacationID(id) }
func (v VacationID) String() string      { return string(v) }
func (v VacationID) IsEmpty() bool       { return string(v) == "" }

type ContractID string

func NewContractID(id string) ContractID { return ContractID(id) }
func (c ContractID) String() string      { return string(c) }
func (c ContractID) IsEmpty() bool       { return string(c) == "" }

type WorkEntryID string

func NewWorkEntryID(id string) WorkEntryID { return WorkEntryID(id) }
func (w WorkEntryID) String() string       { return string(w) }
func (w WorkEntryID) IsEmpty() bool        { return string(w) == "" }

type ChatID string

func NewChatID(id string) ChatID { return ChatID(id) }
func (c ChatID) String() string  { return string(c) }
func (c ChatID) IsEmpty() bool   { return string(c) == "" }
