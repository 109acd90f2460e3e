package component

// Persistent entities survive level unloads. Everything else belongs to the
// level and is destroyed with it.
type Persistent struct {
	ID                string
	KeepOnLevelChange bool
	KeepOnReload      bool
}

var PersistentComponent = NewComponent[Persistent]()
