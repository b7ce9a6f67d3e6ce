package version

// Version is the current release of odoo-cli.
const Version = "0.3.0"
