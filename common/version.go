package common

const AzfilesVersion = "1.2.0"
const UserAgent = "Azfiles/" + AzfilesVersion
