package config

// Settings drives the parts of the catalog that differ between machines:
// where backups land, which NAS share documents sync against, the git
// identity to configure, and the package sets each distro family installs.
// Everything has a built-in default so the tool runs without any file.
type Settings struct {
	BackupDir    string      `yaml:"backup_dir"`    // Destination for home backups and package-list snapshots
	DotfilesRepo string      `yaml:"dotfiles_repo"` // Git URL of the dotfiles repository to deploy
	Git          GitIdentity `yaml:"git"`
	NAS          NASShare    `yaml:"nas"`
	Packages     PackageSets `yaml:"packages"`
	Services     []string    `yaml:"services"` // systemd units enabled by the services step
}

// GitIdentity is written into the global git config by the git step.
type GitIdentity struct {
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	DefaultBranch string `yaml:"default_branch"`
}

// NASShare describes the rsync target used by the NAS sync step.
// - Host: SSH host or host alias of the NAS.
// - RemotePath: path on the NAS side.
// - LocalPath: local directory kept in sync.
type NASShare struct {
	Host       string `yaml:"host"`
	RemotePath string `yaml:"remote_path"`
	LocalPath  string `yaml:"local_path"`
}

// PackageSets lists the packages the install steps feed to each package
// manager. Only the set matching the detected distro is used.
type PackageSets struct {
	Pacman []string `yaml:"pacman"`
	AUR    []string `yaml:"aur"`
	Apt    []string `yaml:"apt"`
	Dnf    []string `yaml:"dnf"`
}
